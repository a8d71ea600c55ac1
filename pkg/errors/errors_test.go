package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type recordingHandler struct {
	errors []*DriftError
	panics []*PanicError
	builds []*BuildError
}

func (h *recordingHandler) HandleError(err *DriftError)      { h.errors = append(h.errors, err) }
func (h *recordingHandler) HandlePanic(err *PanicError)      { h.panics = append(h.panics, err) }
func (h *recordingHandler) HandleBuildError(err *BuildError) { h.builds = append(h.builds, err) }

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindInit, "init"},
		{KindRender, "render"},
		{KindPanic, "panic"},
		{KindBuild, "build"},
		{KindEvent, "event"},
		{ErrorKind(99), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String())
	}
}

func TestDriftError_Unwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := &DriftError{Op: "engine.Frame", Kind: KindRender, Err: cause}

	assert.Equal(t, "engine.Frame [render]: boom", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestPanicErrorString(t *testing.T) {
	assert.Equal(t, "panic: test panic", (&PanicError{Value: "test panic"}).Error())
	assert.Equal(t, "panic in engine.Dispatch: test panic",
		(&PanicError{Op: "engine.Dispatch", Value: "test panic"}).Error())
}

func TestBuildErrorString(t *testing.T) {
	assert.Equal(t, "panic in app.Card.Build(): nope",
		(&BuildError{Widget: "app.Card", Recovered: "nope"}).Error())
	assert.Equal(t, "error in app.Card.Build(): bad",
		(&BuildError{Widget: "app.Card", Err: stderrors.New("bad")}).Error())
	assert.Equal(t, "unknown error in app.Card.Build()",
		(&BuildError{Widget: "app.Card"}).Error())
}

func TestReport_SetsTimestampAndDispatches(t *testing.T) {
	handler := &recordingHandler{}
	SetHandler(handler)
	defer SetHandler(nil)

	Report(&DriftError{Op: "x", Err: stderrors.New("y")})
	ReportBuildError(&BuildError{Widget: "w"})
	Report(nil)

	require.Len(t, handler.errors, 1)
	assert.False(t, handler.errors[0].Timestamp.IsZero())
	require.Len(t, handler.builds, 1)
	assert.False(t, handler.builds[0].Timestamp.IsZero())
}

func TestRecoverWithCallback(t *testing.T) {
	handler := &recordingHandler{}
	SetHandler(handler)
	defer SetHandler(nil)

	var got any
	func() {
		defer RecoverWithCallback("test.op", func(r any) { got = r })
		panic("kaboom")
	}()

	assert.Equal(t, "kaboom", got)
	require.Len(t, handler.panics, 1)
	assert.Equal(t, "test.op", handler.panics[0].Op)
	assert.NotEmpty(t, handler.panics[0].StackTrace)
}

func TestLogHandler_WritesEntries(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	h := &LogHandler{Logger: zap.New(core), Verbose: true}

	h.HandleError(&DriftError{Op: "engine.Frame", Kind: KindRender, Err: stderrors.New("x"), StackTrace: "trace"})
	h.HandlePanic(&PanicError{Op: "engine.Dispatch", Value: 1})
	h.HandleBuildError(&BuildError{Widget: "app.Card", Element: "*core.StatelessElement", Recovered: "r"})
	h.HandleError(nil)

	require.Equal(t, 3, logs.Len())
	entries := logs.All()
	assert.Equal(t, "drift error", entries[0].Message)
	assert.Equal(t, "trace", entries[0].ContextMap()["stack"])
	assert.Equal(t, "drift panic", entries[1].Message)
	assert.Equal(t, "drift build error", entries[2].Message)
	assert.Equal(t, "app.Card", entries[2].ContextMap()["widget"])
}
