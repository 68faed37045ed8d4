package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestaopub/contratos-service/internal/service"
)

func TestBuffer_PopReturnsLastOnce(t *testing.T) {
	buffer := service.NewBuffer(nil)

	_, ok := buffer.Pop()
	assert.False(t, ok)

	buffer.Notify(service.Notification{Title: "Contrato adicionado", Kind: service.NotificationSuccess})
	buffer.Notify(service.Notification{Title: "Contrato atualizado", Kind: service.NotificationSuccess})

	n, ok := buffer.Pop()
	require.True(t, ok)
	assert.Equal(t, "Contrato atualizado", n.Title)

	_, ok = buffer.Pop()
	assert.False(t, ok)
}

func TestBuffer_ForwardsToWrapped(t *testing.T) {
	rec := &recorder{}
	buffer := service.NewBuffer(rec)

	buffer.Notify(service.Notification{Title: "Pagamento adicionado", Kind: service.NotificationSuccess})
	require.Len(t, rec.notifications, 1)
	assert.Equal(t, "Pagamento adicionado", rec.notifications[0].Title)
}
