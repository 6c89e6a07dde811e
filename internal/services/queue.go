package services

import (
	"sort"

	"repair-system/internal/entities"
	"repair-system/pkg/constants"
)

// RankOrders сортирует ПОЛНЫЙ набор заказов для живой очереди: по рангу статуса,
// внутри PENDING — по ближайшему времени встречи, в остальных — свежесозданные
// выше. Набор намеренно материализуется и сортируется целиком в памяти, чтобы
// порядок не зависел от возможностей хранилища; страница режется уже после.
func RankOrders(orders []entities.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		a, b := orders[i], orders[j]

		ra, rb := constants.QueueRank(a.Status), constants.QueueRank(b.Status)
		if ra != rb {
			return ra < rb
		}

		if a.Status == constants.StatusPending && b.Status == constants.StatusPending {
			// Незаполненное время встречи уходит в конец блока PENDING.
			switch {
			case a.MeetingAt.Valid && !b.MeetingAt.Valid:
				return true
			case !a.MeetingAt.Valid && b.MeetingAt.Valid:
				return false
			case a.MeetingAt.Valid && b.MeetingAt.Valid:
				return a.MeetingAt.Time.Before(b.MeetingAt.Time)
			}
		}

		return a.CreatedAt.After(b.CreatedAt)
	})
}

// PaginateOrders режет страницу из уже отсортированной последовательности.
// Сравнение limit с остатком вместо сложения: offset + limit на uint64 может
// переполниться и увести правую границу среза за левую.
func PaginateOrders(orders []entities.Order, limit, offset uint64) []entities.Order {
	total := uint64(len(orders))
	if offset >= total {
		return []entities.Order{}
	}
	end := total
	if limit > 0 && limit < total-offset {
		end = offset + limit
	}
	return orders[offset:end]
}
