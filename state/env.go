// Package state defines shared program state.
package state

import (
	"context"
	"time"

	"go.uber.org/zap"

	"stylekit/config"
	"stylekit/editor"
)

type envKey struct{}

// LocalEnv keeps everything program needs in a single place.
type LocalEnv struct {
	Cfg *config.Config
	Log *zap.Logger
	Ed  *editor.Editor

	start         time.Time
	restoreStdLog func()
}

func newLocalEnv() *LocalEnv {
	return &LocalEnv{start: time.Now()}
}

func EnvFromContext(ctx context.Context) *LocalEnv {
	if env, ok := ctx.Value(envKey{}).(*LocalEnv); ok {
		return env
	}
	// this should never happen
	panic("localenv not found in context")
}

func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, newLocalEnv())
}

func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

func (e *LocalEnv) RedirectStdLog() {
	if e.Log == nil {
		return
	}
	e.restoreStdLog = zap.RedirectStdLog(e.Log)
}

func (e *LocalEnv) RestoreStdLog() {
	if e.Log != nil {
		_ = e.Log.Sync()
	}
	if e.restoreStdLog != nil {
		e.restoreStdLog()
	}
}

// PrepareEditor builds the editor instance from loaded configuration.
// The editor is returned uninitialized - commands decide when (and
// whether) the formatting engine comes up.
func (e *LocalEnv) PrepareEditor() *editor.Editor {
	settings := editor.Settings{
		StyleFormats: config.ToFormats(e.Cfg.Editor.StyleFormats),
		MergeFormats: e.Cfg.Editor.MergeStyleFormats,
	}
	e.Ed = editor.New(settings, e.Log)
	return e.Ed
}
