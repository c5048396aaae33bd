// Package translation is the DeepL text translation adapter.
//
// Requests are form-encoded with the API key in the auth_key field:
//
//	auth_key=<key>&text=<text>&source_lang=KA&target_lang=EN-US&enable_beta_languages=1
//
// Set AuthMode to "header" to send the key as "Authorization: DeepL-Auth-Key <key>"
// instead. The language pair comes from Config and can be overridden per call
// through TranslateRequest.
package translation
