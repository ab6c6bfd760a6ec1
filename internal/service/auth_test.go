package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/joaojacome/bitwarden-ssh-agent/internal/config"
	"github.com/joaojacome/bitwarden-ssh-agent/internal/logger"
	"github.com/joaojacome/bitwarden-ssh-agent/internal/mock"
	"github.com/joaojacome/bitwarden-ssh-agent/internal/prompt"
	"github.com/joaojacome/bitwarden-ssh-agent/internal/vault"
	"github.com/joaojacome/bitwarden-ssh-agent/models"
)

// newTestLoader builds a keyLoader over mocked collaborators. A nil cfg
// gets the built-in defaults.
func newTestLoader(
	t *testing.T,
	ctrl *gomock.Controller,
	cfg *config.Config,
) (
	*keyLoader,
	*mock.MockVaultClient,
	*mock.MockKeyAgent,
	*mock.MockPrompter,
) {
	t.Helper()

	mockVault := mock.NewMockVaultClient(ctrl)
	mockAgent := mock.NewMockKeyAgent(ctrl)
	mockPrompter := mock.NewMockPrompter(ctrl)

	if cfg == nil {
		cfg = &config.Config{
			FolderName:      config.DefaultFolderName,
			CustomField:     config.DefaultCustomField,
			PassphraseField: config.DefaultPassphraseField,
			Lifetime:        config.DefaultLifetime,
		}
	}

	loader := NewKeyLoader(mockVault, mockAgent, mockPrompter, cfg, logger.Nop()).(*keyLoader)

	return loader, mockVault, mockAgent, mockPrompter
}

// ── ensureSession ───────────────────────────────────────────────────────

func TestEnsureSession_ConfiguredSessionUnlocked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &config.Config{
		FolderName:      config.DefaultFolderName,
		CustomField:     config.DefaultCustomField,
		PassphraseField: config.DefaultPassphraseField,
		Session:         "existing-session-token",
	}
	loader, mockVault, _, _ := newTestLoader(t, ctrl, cfg)

	mockVault.EXPECT().SetSession("existing-session-token")
	mockVault.EXPECT().Status(gomock.Any()).
		Return(models.VaultStatus{Status: models.StatusUnlocked, UserEmail: "user@example.com"}, nil)

	err := loader.ensureSession(context.Background())
	require.NoError(t, err)
}

func TestEnsureSession_LockedPromptsForMasterPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loader, mockVault, _, mockPrompter := newTestLoader(t, ctrl, nil)

	mockVault.EXPECT().Status(gomock.Any()).
		Return(models.VaultStatus{Status: models.StatusLocked, UserEmail: "user@example.com"}, nil)
	mockPrompter.EXPECT().Secret(gomock.Any(), "Master password").
		Return("master-password", nil)
	mockVault.EXPECT().Unlock(gomock.Any(), "master-password").Return(nil)

	err := loader.ensureSession(context.Background())
	require.NoError(t, err)
}

func TestEnsureSession_UnauthenticatedLogsIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loader, mockVault, _, mockPrompter := newTestLoader(t, ctrl, nil)

	mockVault.EXPECT().Status(gomock.Any()).
		Return(models.VaultStatus{Status: models.StatusUnauthenticated}, nil)
	mockPrompter.EXPECT().Input(gomock.Any(), "Email").
		Return("user@example.com", nil)
	mockPrompter.EXPECT().Secret(gomock.Any(), "Master password").
		Return("master-password", nil)
	mockVault.EXPECT().Login(gomock.Any(), "user@example.com", "master-password").Return(nil)

	err := loader.ensureSession(context.Background())
	require.NoError(t, err)
}

func TestEnsureSession_PromptUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loader, mockVault, _, mockPrompter := newTestLoader(t, ctrl, nil)

	mockVault.EXPECT().Status(gomock.Any()).
		Return(models.VaultStatus{Status: models.StatusLocked}, nil)
	mockPrompter.EXPECT().Secret(gomock.Any(), "Master password").
		Return("", prompt.ErrNotInteractive)

	err := loader.ensureSession(context.Background())
	assert.ErrorIs(t, err, vault.ErrAuth)
}

func TestEnsureSession_StatusError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loader, mockVault, _, _ := newTestLoader(t, ctrl, nil)

	mockVault.EXPECT().Status(gomock.Any()).
		Return(models.VaultStatus{}, errors.New("bw exited with code 1"))

	err := loader.ensureSession(context.Background())
	assert.EqualError(t, err, "bw exited with code 1")
}

func TestEnsureSession_UnlockFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loader, mockVault, _, mockPrompter := newTestLoader(t, ctrl, nil)

	mockVault.EXPECT().Status(gomock.Any()).
		Return(models.VaultStatus{Status: models.StatusLocked}, nil)
	mockPrompter.EXPECT().Secret(gomock.Any(), "Master password").
		Return("wrong-password", nil)
	mockVault.EXPECT().Unlock(gomock.Any(), "wrong-password").
		Return(vault.ErrAuth)

	err := loader.ensureSession(context.Background())
	assert.ErrorIs(t, err, vault.ErrAuth)
}

func TestEnsureSession_UnexpectedStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loader, mockVault, _, _ := newTestLoader(t, ctrl, nil)

	mockVault.EXPECT().Status(gomock.Any()).
		Return(models.VaultStatus{Status: "absent"}, nil)

	err := loader.ensureSession(context.Background())
	assert.ErrorIs(t, err, vault.ErrAuth)
	assert.Contains(t, err.Error(), "absent")
}
