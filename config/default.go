package config

// DefaultConfigYAML configuração padrão embutida no binário.
// Qualquer chave pode ser sobreposta por um config.yaml externo ou por
// variáveis de ambiente com prefixo FINANCAS_.
var DefaultConfigYAML = []byte(`server:
  port: ":8080"
  mode: "debug"

database:
  host: "127.0.0.1"
  port: "3306"
  username: "root"
  password: ""
  dbname: "financas"
  charset: "utf8mb4"

auth:
  username: "admin"
  password: "admin123"

jwt:
  secret: "troque-este-segredo-em-producao"
  expire_hours: 24

email:
  enabled: false
  host: "smtp.example.com"
  port: 587
  username: ""
  password: ""
  from: "Relatório de Finanças"
  to: ""
`)
