package main

import (
	"context"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	orchestration "github.com/koscakluka/voiceops-core/core"
	"github.com/koscakluka/voiceops-core/core/audio/miniaudio"
	"github.com/koscakluka/voiceops-core/core/conversations"
	"github.com/koscakluka/voiceops-core/core/dispatch"
	"github.com/koscakluka/voiceops-core/core/llms/groq"
	sttdeepgram "github.com/koscakluka/voiceops-core/core/speechtotext/deepgram"
	ttsdeepgram "github.com/koscakluka/voiceops-core/core/texttospeech/deepgram"
	ttselevenlabs "github.com/koscakluka/voiceops-core/core/texttospeech/elevenlabs"
	"github.com/koscakluka/voiceops-core/internal/config"
)

func main() {
	cfg := config.Load()

	audioClient, err := miniaudio.NewClient()
	if err != nil {
		log.Fatalln("Failed to initialize audio:", err)
	}
	defer audioClient.Close()

	var synthesizer orchestration.SpeechSynthesizer
	if cfg.ElevenLabsAPIKey != "" && cfg.ElevenLabsVoiceID != "" {
		synthesizer = ttselevenlabs.NewTextToSpeechClient(cfg.ElevenLabsAPIKey, cfg.ElevenLabsVoiceID, audioClient)
	} else {
		client, err := ttsdeepgram.NewTextToSpeechClient(cfg.DeepgramAPIKey, "", audioClient)
		if err != nil {
			log.Fatalln("Failed to initialize speech synthesis:", err)
		}
		synthesizer = client
	}

	dispatcherOpts := []dispatch.Option{}
	if cfg.StatusEndpoint != "" {
		dispatcherOpts = append(dispatcherOpts, dispatch.WithStatusEndpoint(cfg.StatusEndpoint))
	}
	dispatcher := dispatch.NewDispatcher(dispatcherOpts...)

	session := conversations.NewSession(
		groq.NewClient(cfg.GroqAPIKey, cfg.GroqModel),
		conversations.WithInstructions(systemInstruction),
		conversations.WithTools(dispatcher.Tools()...),
	)

	orchestrator := orchestration.NewOrchestrator(
		orchestration.WithAudioInput(audioClient),
		orchestration.WithSpeechToTextClient(sttdeepgram.NewTranscriptionClient(cfg.DeepgramAPIKey)),
		orchestration.WithSpeechSynthesizer(synthesizer),
		orchestration.WithAgentSession(session),
		orchestration.WithDispatcher(dispatcher),
	)
	defer orchestrator.Close()

	program := tea.NewProgram(initialModel(orchestrator), tea.WithAltScreen())

	orchestrator.Orchestrate(context.Background(),
		orchestration.OnPhaseChanged(func(phase orchestration.Phase) {
			program.Send(phaseChangedMsg{phase: phase})
		}),
		orchestration.OnTranscriptEntry(func(entry orchestration.TranscriptEntry) {
			program.Send(transcriptEntryMsg{entry: entry})
		}),
		orchestration.OnTranscriptCleared(func() {
			program.Send(transcriptClearedMsg{})
		}),
		orchestration.OnSuggestionsUpdated(func(suggestions []string, visible bool) {
			program.Send(suggestionsMsg{suggestions: suggestions, visible: visible})
		}),
		orchestration.OnViewChanged(func(view string) {
			program.Send(viewChangedMsg{view: view})
		}),
		orchestration.OnDispatchBusyChanged(func(busy bool) {
			program.Send(dispatchBusyMsg{busy: busy})
		}),
		orchestration.OnError(func(message string) {
			program.Send(sessionErrorMsg{message: message})
		}),
	)

	if _, err := program.Run(); err != nil {
		log.Fatalln("TUI exited with error:", err)
	}
}
