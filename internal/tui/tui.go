// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal storefront on top of Bubble Tea.
//
// Every screen is a page registered in [RootModel]; pages switch with
// [NavigateTo] messages. Core operations run as tea.Cmd values and each page
// keeps a submitting flag so that a second operation is never dispatched
// while one is in flight.
package tui

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-news-kiosk/internal/logger"
	"github.com/MKhiriev/go-news-kiosk/internal/service"
	"github.com/MKhiriev/go-news-kiosk/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("tui: nil services")
	}
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// Run blocks until the user quits. A restored session opens the feed,
// otherwise the menu is shown first.
func (t *TUI) Run(ctx context.Context) error {
	startPage := pageMenu
	if _, err := t.services.CommerceService.CurrentAccount(ctx); err == nil {
		startPage = pageFeed
	}

	root := NewRootModel(t.pages(ctx), startPage, t.buildInfo)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		t.logger.Info().Msg("user quit")
		return ErrUserQuit
	}
	return nil
}

func (t *TUI) pages(ctx context.Context) map[string]tea.Model {
	commerce := t.services.CommerceService
	catalogSvc := t.services.CatalogService

	return map[string]tea.Model{
		pageMenu:       NewMenuModel(),
		pageLogin:      NewLoginModel(ctx, commerce),
		pageRegister:   NewRegisterModel(ctx, commerce),
		pageFeed:       NewFeedModel(ctx, commerce, catalogSvc, time.Now),
		pageDetail:     NewDetailModel(ctx, commerce, catalogSvc, time.Now, clipboard.WriteAll),
		pageCollection: NewCollectionModel(ctx, commerce, catalogSvc, clipboard.WriteAll),
		pageLuckyDraw:  NewLuckyDrawModel(ctx, commerce, t.services.RewardService),
	}
}

func navigate(page string, payload tea.Msg) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page, Payload: payload} }
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })
}
