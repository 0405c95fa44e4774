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

// Model identifiers.
const (
	// ModelImagen3 is the default Imagen image generation model.
	ModelImagen3 = "imagen-3.0-generate-002"
	// ModelImagen3Fast is the lower-latency Imagen fallback.
	ModelImagen3Fast = "imagen-3.0-fast-generate-001"

	// ModelGeminiImage is the Gemini image generation and editing model.
	ModelGeminiImage = "gemini-2.5-flash-image-preview"

	// ModelVeo3 is the Veo 3 video generation model.
	ModelVeo3 = "veo-3.0-generate-preview"
	// ModelVeo3Fast is the lower-latency Veo 3 fallback.
	ModelVeo3Fast = "veo-3.0-fast-generate-preview"
	// ModelVeo31 is the Veo 3.1 model, which accepts multiple reference images.
	ModelVeo31 = "veo-3.1-generate-preview"
	// ModelVeo31Fast is the lower-latency Veo 3.1 fallback.
	ModelVeo31Fast = "veo-3.1-fast-generate-preview"

	// ModelGeminiTTS is the Gemini text-to-speech model.
	ModelGeminiTTS = "gemini-2.5-flash-preview-tts"

	// ModelGeminiFlash is the default text generation model.
	ModelGeminiFlash = "gemini-2.5-flash"
	// ModelGeminiPro is the text generation model for complex reasoning.
	ModelGeminiPro = "gemini-2.5-pro"
)

// acceptsReferenceImages reports whether the model family accepts a
// structured list of reference images. Other families accept a single base
// image only.
func acceptsReferenceImages(model string) bool {
	return model == ModelVeo31 || model == ModelVeo31Fast
}
