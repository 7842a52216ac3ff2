package chat

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/sells-group/playlist-chat/internal/model"
	"github.com/sells-group/playlist-chat/pkg/ai"
)

// FallbackReply is appended when the backend succeeds but returns no text.
const FallbackReply = "Sorry, I could not generate a response."

// Session holds the transcript for one loaded playlist and drives the
// conversational backend. The mutex serializes Submit end to end so the
// user turn and its matching assistant turn can never interleave with
// another submission's.
type Session struct {
	mu sync.Mutex

	backend  ai.Client
	maxItems int

	title  string
	videos []model.Video
	turns  []model.Turn
}

// NewSession creates an empty session. maxItems bounds how many videos the
// system prompt lists (0 = unbounded).
func NewSession(backend ai.Client, maxItems int) *Session {
	return &Session{backend: backend, maxItems: maxItems}
}

// Reset replaces the loaded playlist, clears the transcript, and seeds the
// greeting turn.
func (s *Session) Reset(title string, videos []model.Video) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.title = title
	s.videos = videos
	s.turns = []model.Turn{{
		Role: model.RoleAssistant,
		Content: fmt.Sprintf("Successfully loaded %d videos from %q. You can now ask me questions about the playlist.",
			len(videos), title),
	}}
}

// Transcript returns a copy of the ordered turns.
func (s *Session) Transcript() []model.Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

// Videos returns the loaded item set.
func (s *Session) Videos() []model.Video {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.videos
}

// Submit appends the user turn, asks the backend, and appends the reply. The
// user turn is recorded before the backend call so it is present even when
// the call fails; backend failures become an assistant error turn, never a
// returned error. Empty input (after trimming) is a no-op and returns nil.
func (s *Session) Submit(ctx context.Context, text string) *model.Turn {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.turns = append(s.turns, model.Turn{Role: model.RoleUser, Content: text})

	reply, err := s.backend.Generate(ctx, BuildContext(s.title, s.videos, s.maxItems), text)
	var turn model.Turn
	switch {
	case err != nil:
		zap.L().Warn("chat backend call failed", zap.Error(err))
		turn = model.Turn{Role: model.RoleAssistant, Content: fmt.Sprintf("Error: %s", err.Error())}
	case reply == "":
		turn = model.Turn{Role: model.RoleAssistant, Content: FallbackReply}
	default:
		turn = model.Turn{Role: model.RoleAssistant, Content: reply}
	}
	s.turns = append(s.turns, turn)

	return &turn
}
