package httpx

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/horaoen/axum-sqlx/internal/db"
	"github.com/horaoen/axum-sqlx/internal/todo"
)

type Server struct {
	R  *gin.Engine
	DB db.Pool

	// Out receives every rendered listing.
	Out io.Writer
	// RenderBody also writes the listing into the response body.
	RenderBody bool

	tp trace.TracerProvider
	mu sync.Mutex // guards Out
}

// Option customizes a Server.
type Option func(*Server)

// WithOutput replaces os.Stdout as the listing side channel.
func WithOutput(w io.Writer) Option {
	return func(s *Server) { s.Out = w }
}

// WithRenderBody controls whether successful responses carry the listing.
func WithRenderBody(on bool) Option {
	return func(s *Server) { s.RenderBody = on }
}

// WithTracerProvider sets the provider used for request spans.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Server) { s.tp = tp }
}

func NewServer(pool db.Pool, opts ...Option) *Server {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	// Request logs go to stderr so stdout only carries listings.
	r.Use(gin.LoggerWithWriter(gin.DefaultErrorWriter), gin.Recovery())

	s := &Server{R: r, DB: pool, Out: os.Stdout, tp: otel.GetTracerProvider()}
	for _, opt := range opts {
		opt(s)
	}

	r.Use(Tracing(s.tp))

	// Method and body are ignored; both verbs list.
	r.GET("/", s.listTodos)
	r.POST("/", s.listTodos)

	return s
}

func (s *Server) listTodos(c *gin.Context) {
	ctx := c.Request.Context()
	todos, err := s.DB.ListTodos(ctx)
	if err != nil {
		Wrap(err).Respond(c)
		return
	}

	listing := []byte(todo.Format(todos))

	s.mu.Lock()
	_, err = s.Out.Write(listing)
	s.mu.Unlock()
	if err != nil {
		Wrap(fmt.Errorf("write listing: %w", err)).Respond(c)
		return
	}

	if s.RenderBody {
		c.Data(http.StatusOK, "text/plain; charset=utf-8", listing)
		return
	}
	c.Status(http.StatusOK)
}
