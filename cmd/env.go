package main

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/playlist-chat/internal/config"
	"github.com/sells-group/playlist-chat/internal/model"
	"github.com/sells-group/playlist-chat/internal/playlist"
	"github.com/sells-group/playlist-chat/internal/probe"
	"github.com/sells-group/playlist-chat/internal/store"
	"github.com/sells-group/playlist-chat/pkg/ai"
	"github.com/sells-group/playlist-chat/pkg/youtube"
)

// appEnv bundles the clients resolved for one command invocation. The
// connection mode is probed once here and threaded into construction; it is
// never re-read afterwards.
type appEnv struct {
	mode    model.ConnectionMode
	yt      youtube.Client
	backend ai.Client
	store   store.Store
	loader  *playlist.Loader
}

func (e *appEnv) Close() {
	if e.store != nil {
		e.store.Close() //nolint:errcheck
	}
}

var noCache bool

func initEnv(ctx context.Context) (*appEnv, error) {
	p := probe.New(cfg.Proxy.LocalURL, cfg.Proxy.RemoteURL)
	mode := p.Run(ctx)

	env := &appEnv{mode: mode}

	switch mode {
	case model.ModeProxyLocal, model.ModeProxyRemote:
		base := p.ProxyURL(mode)
		env.yt = youtube.NewProxy(base)
		env.backend = ai.NewProxy(base)
	default:
		env.yt = youtube.NewDirect(cfg.YouTube.Key, youtube.WithBaseURL(cfg.YouTube.BaseURL))
		backend, err := directBackend(cfg)
		if err != nil {
			return nil, err
		}
		env.backend = backend
	}

	if cfg.Cache.Enabled && !noCache {
		st, err := initStore(ctx)
		if err != nil {
			return nil, err
		}
		env.store = st
	}

	env.loader = playlist.NewLoader(env.yt, env.store, time.Duration(cfg.Cache.TTLHours)*time.Hour)

	zap.L().Debug("environment ready", zap.String("mode", string(mode)))
	return env, nil
}

func initStore(ctx context.Context) (store.Store, error) {
	st, err := store.NewSQLite(cfg.Cache.Path)
	if err != nil {
		return nil, err
	}
	if err := st.Migrate(ctx); err != nil {
		st.Close() //nolint:errcheck
		return nil, err
	}
	return st, nil
}

// directBackend builds the provider client for direct mode, where local keys
// are used instead of the proxy's.
func directBackend(cfg *config.Config) (ai.Client, error) {
	switch cfg.AI.Provider {
	case ai.ProviderGemini:
		return ai.NewGemini(cfg.AI.Gemini.Key, cfg.AI.Gemini.Model,
			ai.WithGeminiBaseURL(cfg.AI.Gemini.BaseURL)), nil
	case ai.ProviderAnthropic:
		return ai.NewAnthropic(cfg.AI.Anthropic.Key, cfg.AI.Anthropic.Model,
			cfg.AI.Anthropic.MaxTokens), nil
	default:
		return nil, eris.Errorf("unknown ai.provider %q (want %q or %q)",
			cfg.AI.Provider, ai.ProviderAnthropic, ai.ProviderGemini)
	}
}
