// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-memo-sync/internal/config"
	"github.com/MKhiriev/go-memo-sync/internal/handler"
	"github.com/MKhiriev/go-memo-sync/internal/logger"
)

const shutdownTimeout = 10 * time.Second

type server struct {
	ipc    *httpServer
	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.ClientIPC, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.IPC == nil || cfg.Address == "" {
		return nil, errNoServersAreCreated
	}

	ipc, err := newHTTPServer(handlers.IPC.Init(), cfg.Address, logger)
	if err != nil {
		return nil, err
	}

	return &server{ipc: ipc, logger: logger}, nil
}

func (s *server) Addr() string {
	return s.ipc.listener.Addr().String()
}

func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	served := make(chan error, 1)
	go func() {
		s.logger.Info().Str("address", s.Addr()).Msg("launching IPC server")
		served <- s.ipc.RunServer()
	}()

	select {
	case err := <-served:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	err := s.Shutdown(shutdownCtx)
	if serveErr := <-served; serveErr != nil {
		err = errors.Join(err, serveErr)
	}
	s.logger.Info().Msg("server shut down gracefully")

	return err
}

func (s *server) Shutdown(ctx context.Context) error {
	return s.ipc.Shutdown(ctx)
}
