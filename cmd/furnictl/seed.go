package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/furnistore-api/internal/application/dto"
	"github.com/jhoicas/furnistore-api/internal/domain"
)

// categoryCreator lo que seedCategories necesita del caso de uso de categorías.
type categoryCreator interface {
	Create(ctx context.Context, in dto.CategoryRequest) (*dto.CategoryResponse, error)
}

var defaultCategories = []dto.CategoryRequest{
	{Name: "Sofás", Description: "Sofás y sillones para la sala"},
	{Name: "Mesas", Description: "Mesas de comedor, centro y auxiliares"},
	{Name: "Sillas", Description: "Sillas de comedor y de oficina"},
	{Name: "Camas", Description: "Camas, cabeceros y bases"},
	{Name: "Armarios", Description: "Armarios y roperos"},
	{Name: "Estanterías", Description: "Estanterías y libreros"},
	{Name: "Decoración", Description: "Lámparas, espejos y accesorios"},
}

// seedCategories crea las categorías que no existen. Las repetidas se omiten.
func seedCategories(ctx context.Context, uc categoryCreator, categories []dto.CategoryRequest) (int, error) {
	created := 0
	for _, c := range categories {
		if _, err := uc.Create(ctx, c); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				continue
			}
			return created, fmt.Errorf("categoría %q: %w", c.Name, err)
		}
		created++
	}
	return created, nil
}
