// Package keccakapi serves Keccak digests over HTTP.
package keccakapi

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/Aurorachain/go-keccak/common"
	"github.com/Aurorachain/go-keccak/crypto/keccak"
	"github.com/Aurorachain/go-keccak/log"
	"github.com/Aurorachain/go-keccak/metrics"
	"github.com/Aurorachain/go-keccak/params"
	"github.com/julienschmidt/httprouter"
	gometrics "github.com/rcrowley/go-metrics"
	"github.com/rs/cors"
)

type Config struct {
	ListenAddr  string
	CorsDomains []string `toml:",omitempty"`
	MaxBodySize int64
}

var DefaultConfig = Config{
	ListenAddr:  params.DefaultListenAddr,
	MaxBodySize: params.DefaultMaxBodySize,
}

type DigestResponse struct {
	Bits   int    `json:"bits"`
	Size   int    `json:"size"`
	Digest string `json:"digest"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type contextKey int

const hasherKey contextKey = iota

type Server struct {
	router  *httprouter.Router
	handler http.Handler
	config  Config

	requests gometrics.Meter
	hashed   gometrics.Meter
	failures gometrics.Counter
	latency  gometrics.Timer
}

func NewServer(config Config) *Server {
	if config.MaxBodySize <= 0 {
		config.MaxBodySize = DefaultConfig.MaxBodySize
	}
	s := &Server{
		router:   httprouter.New(),
		config:   config,
		requests: metrics.NewMeter("keccakapi/requests"),
		hashed:   metrics.NewMeter("keccakapi/bytes"),
		failures: metrics.NewCounter("keccakapi/errors"),
		latency:  metrics.NewTimer("keccakapi/latency"),
	}

	s.GET("/sizes", s.GetSizes)
	s.GET("/keccak/:bits", s.HashQuery)
	s.POST("/keccak/:bits", s.HashBody)
	s.router.Handler(http.MethodGet, "/debug/metrics", metrics.Handler())

	s.handler = newCorsHandler(s.router, config.CorsDomains)
	return s
}

func newCorsHandler(srv http.Handler, allowedOrigins []string) http.Handler {
	if len(allowedOrigins) == 0 {
		return srv
	}
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodPost, http.MethodGet},
		MaxAge:         600,
		AllowedHeaders: []string{"*"},
	})
	return c.Handler(srv)
}

// GetSizes lists the supported digest sizes in bits.
func (s *Server) GetSizes(w http.ResponseWriter, req *http.Request) {
	s.JSON(w, http.StatusOK, keccak.SupportedSizes())
}

// HashQuery hashes the data query parameter. With encoding=hex the value is
// decoded first.
func (s *Server) HashQuery(w http.ResponseWriter, req *http.Request) {
	k := req.Context().Value(hasherKey).(*keccak.Keccak)

	query := req.URL.Query()
	data := []byte(query.Get("data"))
	switch enc := query.Get("encoding"); enc {
	case "", "utf8", "text":
	case "hex":
		b, err := common.DecodeHex(string(data))
		if err != nil {
			s.Error(w, http.StatusBadRequest, err)
			return
		}
		data = b
	default:
		s.Error(w, http.StatusBadRequest, errUnknownEncoding(enc))
		return
	}
	k.Update(data)
	s.hashed.Mark(int64(len(data)))
	s.digest(w, k)
}

// HashBody hashes the raw request body.
func (s *Server) HashBody(w http.ResponseWriter, req *http.Request) {
	k := req.Context().Value(hasherKey).(*keccak.Keccak)

	n, err := io.Copy(k, io.LimitReader(req.Body, s.config.MaxBodySize+1))
	if err != nil {
		s.Error(w, http.StatusBadRequest, err)
		return
	}
	if n > s.config.MaxBodySize {
		s.Error(w, http.StatusRequestEntityTooLarge, errBodyTooLarge(s.config.MaxBodySize))
		return
	}
	s.hashed.Mark(n)
	s.digest(w, k)
}

func (s *Server) digest(w http.ResponseWriter, k *keccak.Keccak) {
	s.JSON(w, http.StatusOK, &DigestResponse{
		Bits:   k.Bits(),
		Size:   k.Size(),
		Digest: k.HexHash(),
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	s.handler.ServeHTTP(w, req)
}

func (s *Server) GET(path string, handle http.HandlerFunc) {
	s.router.GET(path, s.wrapHandler(handle))
}

func (s *Server) POST(path string, handle http.HandlerFunc) {
	s.router.POST(path, s.wrapHandler(handle))
}

func (s *Server) JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (s *Server) Error(w http.ResponseWriter, status int, err error) {
	s.failures.Inc(1)
	log.Debug("Digest request failed", "status", status, "err", err)
	s.JSON(w, status, &ErrorResponse{Error: err.Error()})
}

// wrapHandler resolves the :bits parameter into a fresh hasher and records
// request metrics.
func (s *Server) wrapHandler(handler http.HandlerFunc) httprouter.Handle {
	return func(w http.ResponseWriter, req *http.Request, params httprouter.Params) {
		s.requests.Mark(1)
		defer s.latency.UpdateSince(time.Now())

		ctx := req.Context()
		if bits := params.ByName("bits"); bits != "" {
			n, err := strconv.Atoi(bits)
			if err != nil {
				s.Error(w, http.StatusBadRequest, errBadSize(bits))
				return
			}
			k, err := keccak.New(n)
			if err != nil {
				s.Error(w, http.StatusBadRequest, err)
				return
			}
			ctx = context.WithValue(ctx, hasherKey, k)
		}
		handler(w, req.WithContext(ctx))
	}
}

// ListenAndServe listens on the configured address and serves until ctx is
// cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.config.ListenAddr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listener)
}

func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	srv := &http.Server{Handler: s}
	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(listener) }()
	log.Info("HTTP digest service started", "addr", listener.Addr().String(), "cors", s.config.CorsDomains)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	log.Info("HTTP digest service stopping", "addr", listener.Addr().String())
	shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdown)
}
