package tgbot

import (
	"context"
	"errors"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"datepicker-bot/pkg/datepicker"
)

// ErrNoMessage — у callback-а нет сообщения (inline-режим).
var ErrNoMessage = errors.New("callback has no message to edit")

// Requester описывает часть BotAPI, которая нужна чату.
type Requester interface {
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type Chat struct {
	api     Requester
	query   *tgbotapi.CallbackQuery
	unique  string
	ackOnce sync.Once
	ackErr  error
}

func NewChat(api Requester, query *tgbotapi.CallbackQuery, unique string) *Chat {
	return &Chat{api: api, query: query, unique: unique}
}

func (ch *Chat) Edit(_ context.Context, kb datepicker.Keyboard) error {
	msg := ch.query.Message
	if msg == nil {
		return ErrNoMessage
	}
	edit := tgbotapi.NewEditMessageReplyMarkup(msg.Chat.ID, msg.MessageID, Markup(ch.unique, kb))
	if _, err := ch.api.Request(edit); err != nil && !strings.Contains(err.Error(), "not modified") {
		return err
	}
	return nil
}

func (ch *Chat) Acknowledge(_ context.Context, cacheTime int) error {
	ch.ackOnce.Do(func() {
		cfg := tgbotapi.NewCallback(ch.query.ID, "")
		cfg.CacheTime = cacheTime
		_, ch.ackErr = ch.api.Request(cfg)
	})
	return ch.ackErr
}

func (ch *Chat) Delete(_ context.Context) error {
	msg := ch.query.Message
	if msg == nil {
		return ErrNoMessage
	}
	_, err := ch.api.Request(tgbotapi.NewDeleteMessage(msg.Chat.ID, msg.MessageID))
	return err
}
