// Copyright 2025 Label Studio contributors.
// SPDX-License-Identifier: Apache-2.0
package accesscontrol

import (
	"fmt"
	"log"
	"log/slog"

	"github.com/PC91/label-studio/shared"
	"github.com/casbin/casbin/v2/persist"
)

type casbinPubSubWatcher struct {
	broker   shared.PubSubBroker
	callback func(string)
}

var _ persist.Watcher = &casbinPubSubWatcher{}

func newCasbinPubSubWatcher(broker shared.PubSubBroker) *casbinPubSubWatcher {
	ch, err := broker.Subscribe(shared.PolicyChange)
	if err != nil {
		log.Fatalf("could not subscribe to policy change topic: %v", err)
	}

	watcher := &casbinPubSubWatcher{
		broker: broker,
	}

	go watcher.listenForUpdates(ch)
	return watcher
}

func (w *casbinPubSubWatcher) listenForUpdates(ch <-chan map[string]any) {
	slog.Debug("listening for policy change notifications")
	for range ch {
		slog.Debug("received policy change notification")
		if w.callback != nil {
			w.callback("policy updated")
		}
	}
}

func (w *casbinPubSubWatcher) SetUpdateCallback(callback func(string)) error {
	w.callback = callback
	return nil
}

func (w *casbinPubSubWatcher) Update() error {
	if w.callback == nil {
		return fmt.Errorf("no callback set")
	}

	if err := w.broker.Publish(shared.PolicyChange, map[string]any{"action": "update"}); err != nil {
		log.Printf("could not publish policy change: %v", err)
	}
	return nil
}

func (w *casbinPubSubWatcher) Close() {
	w.callback = nil
}
