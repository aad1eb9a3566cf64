package api

import (
	"financas/config"
)

// SafeErrorMessage em produção não expõe detalhes internos do erro ao cliente
func SafeErrorMessage(err error, fallback string) string {
	return config.SafeErrorMessage(err, fallback)
}
