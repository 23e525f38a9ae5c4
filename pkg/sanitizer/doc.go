// Package sanitizer provides input normalization for data arriving from public forms.
//
// All functions are idempotent on already-normalized input except EscapeHTML, which
// escapes the ampersands of entities it produced earlier; apply it exactly once, at the
// boundary. Functions never fail: input that cannot be normalized is returned trimmed
// and left for validation to reject.
//
// Normalization includes:
//   - Text: trim leading/trailing whitespace
//   - Markup: neutralize HTML-significant characters as entities
//   - Email: lowercase, and canonicalize provider-specific aliases
//     ("John.Doe+news@GoogleMail.com" becomes "johndoe@gmail.com")
package sanitizer
