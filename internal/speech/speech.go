// Package speech defines the voice adapter seams and the ElevenLabs
// text-to-speech client. Transcription has no server-side implementation
// here: the voice front ends transcribe before calling the chat endpoint,
// and any that cannot may plug a Transcriber into this seam.
package speech

import "context"

// Synthesizer turns reply text into playable audio bytes.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// Transcriber turns captured audio into text. An empty string with a nil
// error means nothing intelligible was heard.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte) (string, error)
}
