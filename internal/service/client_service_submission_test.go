package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/InfraForgeLabs/devopsmind-relay/internal/adapter"
	"github.com/InfraForgeLabs/devopsmind-relay/internal/logger"
	"github.com/InfraForgeLabs/devopsmind-relay/internal/mock"
	"github.com/InfraForgeLabs/devopsmind-relay/internal/utils"
	"github.com/InfraForgeLabs/devopsmind-relay/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestParseSubmitterMeta(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    models.SubmitterMeta
		wantErr bool
	}{
		{
			name: "gamer and email",
			body: "gamer: neo\nname: Thomas\nemail: \"  Neo@Matrix.IO \"\nxp: 120\n",
			want: models.SubmitterMeta{Gamer: "neo", EmailHash: utils.DigestString("neo@matrix.io")},
		},
		{
			name: "falls back to name",
			body: "name: Trinity\n",
			want: models.SubmitterMeta{Gamer: "Trinity"},
		},
		{
			name: "nothing known",
			body: "xp: 10\n",
			want: models.SubmitterMeta{Gamer: UnknownGamer},
		},
		{
			name: "empty document",
			body: "",
			want: models.SubmitterMeta{Gamer: UnknownGamer},
		},
		{
			name:    "not a mapping",
			body:    "- a\n- b\n",
			want:    models.SubmitterMeta{Gamer: UnknownGamer},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSubmitterMeta([]byte(tt.body))
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClientSubmissionService_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	relay := mock.NewMockRelayClient(ctrl)
	svc := NewClientSubmissionService(relay, logger.Nop())

	body := []byte("gamer: neo\nemail: neo@matrix.io\n")
	want := models.SuccessEnvelope(utils.Digest(body))

	relay.EXPECT().
		Submit(gomock.Any(), models.NewSubmission(body), models.SubmitterMeta{
			Gamer:     "neo",
			EmailHash: utils.DigestString("neo@matrix.io"),
		}).
		Return(want, nil)

	got, err := svc.Submit(context.Background(), body)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClientSubmissionService_Submit_NonYAMLStillSent(t *testing.T) {
	ctrl := gomock.NewController(t)
	relay := mock.NewMockRelayClient(ctrl)
	svc := NewClientSubmissionService(relay, logger.Nop())

	relay.EXPECT().
		Submit(gomock.Any(), gomock.Any(), models.SubmitterMeta{Gamer: UnknownGamer}).
		Return(models.FailureEnvelope("GitHub dispatch failed"), nil)

	got, err := svc.Submit(context.Background(), []byte("- just\n- a list\n"))
	require.NoError(t, err)
	assert.False(t, got.OK)
}

func TestClientSubmissionService_Submit_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "refused", err: fmt.Errorf("%w: http 413", adapter.ErrRelayRejected), want: ErrSubmissionRefused},
		{name: "bad reply", err: fmt.Errorf("%w: eof", adapter.ErrInvalidRelayResponse), want: ErrUnexpectedRelayReply},
		{name: "network", err: errors.New("submit request: dial tcp: refused"), want: ErrRelayUnreachable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			relay := mock.NewMockRelayClient(ctrl)
			svc := NewClientSubmissionService(relay, logger.Nop())

			relay.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.Envelope{}, tt.err)

			_, err := svc.Submit(context.Background(), []byte("gamer: x\n"))
			require.ErrorIs(t, err, tt.want)
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestClientSubmissionService_Digest(t *testing.T) {
	svc := NewClientServices(nil, logger.Nop()).SubmissionService
	assert.Equal(t, helloDigest, svc.Digest([]byte("hello")))
}
