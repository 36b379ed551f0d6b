package venda

import (
	"context"

	"github.com/loja-backend/loja-api/internal/domain"
	"github.com/loja-backend/loja-api/internal/domain/repository"
)

// DocumentoUseCase gera os documentos de uma venda: a nota fiscal em XML
// simplificado e o recibo em PDF. Só leitura; carrega a venda com as
// associações resolvidas e delega a renderização às portas.
type DocumentoUseCase struct {
	vendaRepo repository.VendaRepository
	nfBuilder NotaFiscalBuilder
	pdfGen    ReciboPDFGenerator
}

// NewDocumentoUseCase constrói o caso de uso.
func NewDocumentoUseCase(vendaRepo repository.VendaRepository, nfBuilder NotaFiscalBuilder, pdfGen ReciboPDFGenerator) *DocumentoUseCase {
	return &DocumentoUseCase{vendaRepo: vendaRepo, nfBuilder: nfBuilder, pdfGen: pdfGen}
}

// GerarNotaFiscalXML devolve o XML da nota fiscal da venda.
func (uc *DocumentoUseCase) GerarNotaFiscalXML(ctx context.Context, vendaID string) ([]byte, error) {
	v, err := uc.vendaRepo.GetByID(vendaID)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	return uc.nfBuilder.Build(v)
}

// GerarReciboPDF devolve o recibo da venda em PDF.
func (uc *DocumentoUseCase) GerarReciboPDF(ctx context.Context, vendaID string) ([]byte, error) {
	v, err := uc.vendaRepo.GetByID(vendaID)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	return uc.pdfGen.GenerateReciboPDF(ctx, v)
}
