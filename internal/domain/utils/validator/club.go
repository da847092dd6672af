package validator

import "github.com/clubshub/clubshub/internal/domain/entity"

func ClubCategory(category entity.ClubCategory) bool {
	switch category {
	case entity.CategoryTech, entity.CategoryNonTech, entity.CategoryExtracurricular:
		return true
	}
	return false
}
