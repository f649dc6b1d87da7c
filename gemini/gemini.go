// Package gemini implements [imagine.Generator] for the Google Gemini API.
//
// It wraps the google.golang.org/genai SDK, translating between imagine's
// domain types and the Gemini API types. The provider reply is treated as
// untrusted: [ExtractImage] validates every nested field before use and any
// shape mismatch surfaces as a failed outcome, never a fault.
package gemini

const defaultModel = "gemini-2.5-flash-image-preview"
