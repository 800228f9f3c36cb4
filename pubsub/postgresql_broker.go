// Copyright 2025 Label Studio contributors.
// SPDX-License-Identifier: Apache-2.0

package pubsub

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/PC91/label-studio/shared"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type message struct {
	ID        string                 `json:"id"`
	Channel   shared.Channel         `json:"channel"`
	Payload   map[string]interface{} `json:"payload"`
	Timestamp time.Time              `json:"timestamp"`
	SenderID  string                 `json:"sender_id,omitempty"`
}

// PostgreSQLBroker implements shared.PubSubBroker on top of PostgreSQL
// LISTEN/NOTIFY. Every replica gets its own broker instance; messages
// published by an instance are not delivered back to itself.
type PostgreSQLBroker struct {
	db           *sql.DB
	listener     *pq.Listener
	subscribers  map[shared.Channel][]chan map[string]interface{}
	subscribeMux sync.RWMutex
	ctx          context.Context
	cancel       context.CancelFunc
	wg           sync.WaitGroup
	isListening  bool
	listeningMux sync.Mutex
	id           string
}

// BrokerFactory builds a broker from the active configuration.
func BrokerFactory() (shared.PubSubBroker, error) {
	return NewPostgreSQLBroker(
		shared.Cfg.PostgresUser,
		shared.Cfg.PostgresPassword,
		shared.Cfg.PostgresHost,
		shared.Cfg.PostgresPort,
		shared.Cfg.PostgresDB,
	)
}

func NewPostgreSQLBroker(user, password, host, port, dbname string) (*PostgreSQLBroker, error) {
	connectionString := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, dbname)

	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	listener := pq.NewListener(connectionString, 10*time.Second, time.Minute, func(ev pq.ListenerEventType, err error) {
		if err != nil {
			slog.Error("postgresql listener error", "error", err)
		}
	})

	ctx, cancel := context.WithCancel(context.Background())

	return &PostgreSQLBroker{
		db:          db,
		listener:    listener,
		subscribers: make(map[shared.Channel][]chan map[string]interface{}),
		ctx:         ctx,
		cancel:      cancel,
		id:          uuid.New().String(),
	}, nil
}

func (b *PostgreSQLBroker) Publish(channel shared.Channel, payload map[string]interface{}) error {
	msg := message{
		ID:        uuid.New().String(),
		Channel:   channel,
		Payload:   payload,
		Timestamp: time.Now(),
		SenderID:  b.id,
	}

	messageJSON, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	query := fmt.Sprintf("NOTIFY %s, '%s'", pq.QuoteIdentifier(string(channel)), string(messageJSON))
	if _, err := b.db.ExecContext(b.ctx, query); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	slog.Debug("message published", "channel", channel, "messageID", msg.ID)
	return nil
}

func (b *PostgreSQLBroker) Subscribe(channel shared.Channel) (<-chan map[string]interface{}, error) {
	b.subscribeMux.Lock()
	defer b.subscribeMux.Unlock()

	ch := make(chan map[string]interface{}, 100)

	if _, exists := b.subscribers[channel]; !exists {
		if err := b.listener.Listen(string(channel)); err != nil {
			close(ch)
			return nil, fmt.Errorf("failed to listen on channel %s: %w", channel, err)
		}
		slog.Info("started listening", "channel", channel)
	}

	b.subscribers[channel] = append(b.subscribers[channel], ch)

	b.listeningMux.Lock()
	if !b.isListening {
		b.isListening = true
		b.wg.Add(1)
		go b.processMessages()
	}
	b.listeningMux.Unlock()

	return ch, nil
}

func (b *PostgreSQLBroker) processMessages() {
	defer b.wg.Done()
	defer func() {
		b.listeningMux.Lock()
		b.isListening = false
		b.listeningMux.Unlock()
	}()

	for {
		select {
		case <-b.ctx.Done():
			return
		case notification := <-b.listener.Notify:
			if notification != nil {
				b.handleNotification(notification)
			}
		case <-time.After(time.Second):
			// keepalive
			if err := b.listener.Ping(); err != nil {
				slog.Error("failed to ping listener", "error", err)
			}
		}
	}
}

func (b *PostgreSQLBroker) handleNotification(notification *pq.Notification) {
	var msg message
	if err := json.Unmarshal([]byte(notification.Extra), &msg); err != nil {
		slog.Error("failed to unmarshal message", "error", err, "payload", notification.Extra)
		return
	}

	if msg.SenderID == b.id {
		return
	}

	channel := shared.Channel(notification.Channel)

	b.subscribeMux.RLock()
	subscribers := b.subscribers[channel]
	b.subscribeMux.RUnlock()

	for _, subscriber := range subscribers {
		select {
		case subscriber <- msg.Payload:
		default:
			slog.Warn("subscriber channel full, dropping message", "channel", channel, "messageID", msg.ID)
		}
	}
}

func (b *PostgreSQLBroker) Close() error {
	b.cancel()
	b.wg.Wait()

	b.subscribeMux.Lock()
	for channel, subscribers := range b.subscribers {
		for _, ch := range subscribers {
			close(ch)
		}
		delete(b.subscribers, channel)
	}
	b.subscribeMux.Unlock()

	if err := b.listener.Close(); err != nil {
		return fmt.Errorf("failed to close listener: %w", err)
	}
	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return fmt.Errorf("failed to close database connection: %w", err)
		}
	}
	return nil
}

func (b *PostgreSQLBroker) IsHealthy() bool {
	if b.db == nil {
		return false
	}
	if err := b.db.Ping(); err != nil {
		return false
	}
	return b.listener.Ping() == nil
}
