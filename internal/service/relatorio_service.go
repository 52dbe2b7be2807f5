package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/victor-jaber/Maybach-system-sub000/internal/repository"

	"github.com/xuri/excelize/v2"
)

// RelatorioService produces the audit exports the back office reviews:
// today only the "vendas sem contrato" worksheet, listing every sale the
// contract bridge failed to pair.
type RelatorioService interface {
	VendasSemContratoXLSX(ctx context.Context) ([]byte, error)
}

type relatorioService struct {
	vendaRepo repository.VendaRepository
}

func NewRelatorioService(vendaRepo repository.VendaRepository) RelatorioService {
	return &relatorioService{vendaRepo: vendaRepo}
}

func (s *relatorioService) VendasSemContratoXLSX(ctx context.Context) ([]byte, error) {
	vendas, err := s.vendaRepo.ListSemContrato(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Vendas sem contrato"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Data", "Cliente", "Veículo", "Valor total", "Entrada", "Erro do contrato"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	estiloCabecalho, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDDDDD"}, Pattern: 1},
	})
	if err == nil {
		ultima, _ := excelize.CoordinatesToCellName(len(headers), 1)
		_ = f.SetCellStyle(sheet, "A1", ultima, estiloCabecalho)
	}

	for i, v := range vendas {
		linha := i + 2
		cliente := ""
		if v.Cliente != nil {
			cliente = v.Cliente.Nome
		}
		veiculo := ""
		if v.Veiculo != nil {
			veiculo = veiculoResumo(v.Veiculo)
		}
		valores := []interface{}{
			v.ID,
			v.CreatedAt.Format("02/01/2006 15:04"),
			cliente,
			veiculo,
			v.ValorTotal.StringFixed(2),
			v.Entrada.StringFixed(2),
			derefStr(v.ContratoErro),
		}
		for col, valor := range valores {
			cell, _ := excelize.CoordinatesToCellName(col+1, linha)
			if err := f.SetCellValue(sheet, cell, valor); err != nil {
				return nil, err
			}
		}
	}

	_ = f.SetColWidth(sheet, "B", "B", 18)
	_ = f.SetColWidth(sheet, "C", "D", 32)
	_ = f.SetColWidth(sheet, "G", "G", 48)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("falha ao gerar planilha: %w", err)
	}
	return buf.Bytes(), nil
}
