// Package prompt obtains encryption passwords from the user.
//
// Two sources are supported:
//
//   - A terminal prompt on /dev/tty (CON on Windows) with echo disabled.
//     Reading from the tty directly keeps the prompt working when stdin is
//     piped, the same way the plaintext is piped into `keyfold store add`.
//
//   - An external password command (e.g. `pass show keyfold`), run through
//     the shell with its stdout captured. This source is non-interactive:
//     callers must not retry a wrong password against it, because the command
//     will keep returning the same answer.
//
// Cancellation (EOF at the prompt, or an empty answer with no suggested
// fallback) is reported as errors.ErrPromptCancelled so callers can abort
// cleanly before touching any file.
package prompt
