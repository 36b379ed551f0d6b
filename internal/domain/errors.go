package domain

import "errors"

// Erros de domínio (sem dependências externas).
//
// Os três primeiros são o contrato de falha da criação de venda: o texto é
// exposto tal qual ao chamador e tratado como um conjunto fechado de motivos.
var (
	ErrClienteNaoEncontrado   = errors.New("Cliente não encontrado.")
	ErrProdutoNaoEncontrado   = errors.New("Produto não encontrado.")
	ErrQuantidadeInsuficiente = errors.New("Quantidade insuficiente no depósito.")

	ErrNotFound          = errors.New("recurso não encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrEmailJaCadastrado = errors.New("o email já está cadastrado")
	ErrUnauthorized      = errors.New("não autorizado")
)
