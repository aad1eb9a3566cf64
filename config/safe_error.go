package config

// IsProduction informa se o servidor está em modo release.
func IsProduction() bool {
	return GlobalConfig != nil && GlobalConfig.Server.Mode == "release"
}

// SafeErrorMessage em produção não expõe detalhes internos do erro ao
// cliente; em desenvolvimento devolve a mensagem original.
func SafeErrorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	if IsProduction() {
		return fallback
	}
	return err.Error()
}
