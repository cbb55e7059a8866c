package tcp

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lorendev/estoque-api/pkg/logger"
)

// Limite de tamanho de uma linha de requisição. Linhas maiores encerram a
// conexão com erro de leitura, sem afetar as demais conexões.
const maxLineBytes = 1 << 20

// Server é o servidor de conexões do protocolo linha-a-linha: aceita
// conexões indefinidamente e dedica uma goroutine a cada uma. Dentro de uma
// conexão o processamento é estritamente sequencial, uma resposta por
// requisição, na ordem de chegada.
type Server struct {
	addr        string
	idleTimeout time.Duration
	dispatcher  *Dispatcher
	log         *logger.Logger

	wg sync.WaitGroup
}

// NewServer constrói o servidor. idleTimeout zero desliga o prazo de
// ociosidade por conexão.
func NewServer(addr string, idleTimeout time.Duration, dispatcher *Dispatcher, log *logger.Logger) *Server {
	return &Server{
		addr:        addr,
		idleTimeout: idleTimeout,
		dispatcher:  dispatcher,
		log:         log,
	}
}

// Listen abre o socket e serve conexões até o contexto ser cancelado.
// Falha de bind é fatal e retornada imediatamente; depois disso nenhum erro
// de conexão individual derruba o servidor.
func (s *Server) Listen(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("bind %s: %w", s.addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve atende conexões de um listener já aberto até o contexto ser
// cancelado. Ao cancelar, para de aceitar e aguarda os workers em andamento
// encerrarem.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.log.Info().Str("addr", ln.Addr().String()).Msg("servidor TCP escutando")

	stop := context.AfterFunc(ctx, func() { _ = ln.Close() })
	defer stop()

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				break
			}
			s.log.Warn().Err(err).Msg("falha ao aceitar conexão")
			continue
		}
		s.wg.Add(1)
		go s.handleConn(ctx, conn)
	}

	s.wg.Wait()
	s.log.Info().Msg("servidor TCP encerrado")
	return nil
}

// handleConn é o worker de conexão: lê requisições terminadas em \n até o
// peer desconectar, despacha cada uma sincronamente e escreve uma linha de
// resposta. Erros de leitura fecham apenas esta conexão.
func (s *Server) handleConn(ctx context.Context, conn net.Conn) {
	defer s.wg.Done()
	defer conn.Close()

	connLog := s.log.With().
		Str("conn_id", uuid.New().String()).
		Str("remote", conn.RemoteAddr().String()).
		Logger()
	connLog.Info().Msg("cliente conectado")

	// Cancelamento do contexto desbloqueia leituras pendentes.
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	writer := bufio.NewWriter(conn)

	for {
		if s.idleTimeout > 0 {
			_ = conn.SetReadDeadline(time.Now().Add(s.idleTimeout))
		}
		if !scanner.Scan() {
			break
		}
		linha := bytes.TrimSpace(scanner.Bytes())
		if len(linha) == 0 {
			continue
		}

		resposta := s.dispatcher.Dispatch(ctx, linha)
		_, _ = writer.Write(resposta)
		_ = writer.WriteByte('\n')
		if err := writer.Flush(); err != nil {
			connLog.Warn().Err(err).Msg("falha ao escrever resposta")
			return
		}
	}

	if err := scanner.Err(); err != nil && ctx.Err() == nil {
		connLog.Warn().Err(err).Msg("leitura encerrada com erro")
	}
	connLog.Info().Msg("cliente desconectado")
}
