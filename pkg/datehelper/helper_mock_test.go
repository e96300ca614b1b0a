package datehelper

import (
	"testing"

	"github.com/andyk72/date-helper/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockClock *mocks.MockClock
}

func newHelperTestMock(t *testing.T, opts ...Option) (m allMocks, h *Helper, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	m = allMocks{
		mockClock: mocks.NewMockClock(ctrl),
	}

	h = New(append([]Option{WithClock(m.mockClock)}, opts...)...)
	require.NotNil(t, h)

	return
}
