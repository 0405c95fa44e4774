//
// Tencent is pleased to support the open source community by making trpc-genmedia-go available.
//
// Copyright (C) 2025 Tencent.
// All rights reserved.
//
// If you have downloaded a copy of the tRPC source code from Tencent,
// please note that tRPC source code is licensed under the  Apache 2.0 License,
// A copy of the Apache 2.0 License is included in this file.
//
//

package generate

import (
	"bytes"
	"context"
	"encoding/binary"

	"google.golang.org/genai"
	"google.golang.org/grpc/codes"

	"trpc.group/trpc-go/trpc-genmedia-go/asset"
	"trpc.group/trpc-go/trpc-genmedia-go/log"
	"trpc.group/trpc-go/trpc-genmedia-go/scope"
	"trpc.group/trpc-go/trpc-genmedia-go/status"
	"trpc.group/trpc-go/trpc-genmedia-go/telemetry"
)

const (
	// DefaultVoice is the prebuilt voice used when the request names none.
	DefaultVoice = "Kore"

	// maxSpeechRunes bounds the text sent to the TTS model.
	maxSpeechRunes = 1000

	// The TTS model emits 16-bit mono PCM at 24kHz.
	speechSampleRate    = 24000
	speechChannels      = 1
	speechBytesPerFrame = 2
)

// Speech synthesizes speech for the request prompt and returns it as a WAV
// asset.
func Speech(ctx context.Context, api API, req *Request) (*asset.Asset, error) {
	sc := scope.From(ctx)
	log.Infof("generate: [%s] %sstarting speech generation: %s",
		sc.TraceID, sc.Indent(), sc.Content(req.Prompt))

	model := req.Model
	if model == "" {
		model = ModelGeminiTTS
	}
	voice := req.Voice
	if voice == "" {
		voice = DefaultVoice
	}
	text := truncateRunes(req.Prompt, maxSpeechRunes)

	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: voice},
			},
		},
	}
	contents := []*genai.Content{genai.NewContentFromParts(
		[]*genai.Part{genai.NewPartFromText(text)}, genai.RoleUser)}

	callCtx, span := telemetry.StartCall(ctx, telemetry.SpanNameGenerate, sc.TraceID, model, "audio", 0)
	resp, err := api.GenerateContent(callCtx, model, contents, config)
	telemetry.EndCall(span, err)
	if err != nil {
		log.Errorf("generate: [%s] failed to generate audio: %v", sc.TraceID, err)
		return nil, status.New(codes.Internal, "Failed to generate audio.",
			status.WithDetails("An error occurred during audio generation."),
			status.WithInternalDetails(err.Error()))
	}
	if err := ValidateRecitation(resp); err != nil {
		return nil, status.FromError(err)
	}

	pcm := firstInlineData(resp)
	if len(pcm) == 0 {
		return nil, status.New(codes.Internal, "No audio generated.",
			status.WithDetails("The speech model returned no audio data."))
	}
	return &asset.Asset{
		Data:     wavFromPCM(pcm, speechSampleRate, speechChannels, speechBytesPerFrame),
		MIMEType: "audio/wav",
		Model:    model,
	}, nil
}

// firstInlineData returns the first inline blob of the first candidate.
func firstInlineData(resp *genai.GenerateContentResponse) []byte {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil
	}
	content := resp.Candidates[0].Content
	if content == nil {
		return nil
	}
	for _, part := range content.Parts {
		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return part.InlineData.Data
		}
	}
	return nil
}

// truncateRunes shortens s to at most n runes without splitting a rune.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// wavFromPCM frames raw little-endian PCM samples as a RIFF/WAVE file.
func wavFromPCM(pcm []byte, sampleRate, channels, bytesPerSample int) []byte {
	var buf bytes.Buffer
	dataLen := uint32(len(pcm))
	byteRate := uint32(sampleRate * channels * bytesPerSample)
	blockAlign := uint16(channels * bytesPerSample)

	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36)+dataLen)
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16)) // fmt chunk size
	binary.Write(&buf, binary.LittleEndian, uint16(1))  // PCM format
	binary.Write(&buf, binary.LittleEndian, uint16(channels))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, byteRate)
	binary.Write(&buf, binary.LittleEndian, blockAlign)
	binary.Write(&buf, binary.LittleEndian, uint16(bytesPerSample*8))
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, dataLen)
	buf.Write(pcm)
	return buf.Bytes()
}
