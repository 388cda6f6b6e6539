package handler

import (
	"errors"
	"fmt"

	"overlay/internal/cli/output"
	"overlay/internal/core"
	"overlay/internal/ports"
)

type TokenCommandHandler struct {
	tokenStore    *core.TokenStore
	terminalInput ports.TerminalInput
	printer       *output.Printer
}

func ProvideTokenCommandHandler(
	tokenStore *core.TokenStore,
	terminalInput ports.TerminalInput,
	printer *output.Printer,
) TokenCommandHandler {
	return TokenCommandHandler{
		tokenStore:    tokenStore,
		terminalInput: terminalInput,
		printer:       printer,
	}
}

func (h *TokenCommandHandler) HandleSet() error {
	if !h.terminalInput.IsTerminal() {
		return fmt.Errorf("cannot read token: no terminal available")
	}

	token, err := h.terminalInput.ReadPassword(fmt.Sprintf("Enter %s: ", h.printer.Bold("GitHub token")))
	if err != nil {
		return fmt.Errorf("failed to read token: %w", err)
	}

	if err := h.tokenStore.Store(token); err != nil {
		return err
	}
	h.printer.Success("GitHub token saved")
	return nil
}

func (h *TokenCommandHandler) HandleDelete() error {
	err := h.tokenStore.Delete()
	if errors.Is(err, core.ErrTokenNotStored) {
		h.printer.Info("No GitHub token stored")
		return nil
	}
	if err != nil {
		return err
	}
	h.printer.Success("GitHub token deleted")
	return nil
}

func (h *TokenCommandHandler) HandleStatus() error {
	_, err := h.tokenStore.Lookup()
	if errors.Is(err, core.ErrTokenNotStored) {
		h.printer.Info("No GitHub token stored, pass --token or set TOKEN")
		return nil
	}
	if err != nil {
		return err
	}
	h.printer.Success("GitHub token stored in keyring")
	return nil
}
