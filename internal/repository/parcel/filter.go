package parcel

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
	"parceldesk/internal/entities"
)

type operator int

const (
	opContains operator = iota
	opEquals
)

// predicate - одно условие поиска: колонка, оператор и значение. Значение
// всегда уходит параметром запроса, в текст SQL попадает только колонка.
type predicate struct {
	column string
	op     operator
	value  string
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func predicatesFromFilter(filter entities.PackageFilter) []predicate {
	candidates := []predicate{
		{column: "tracking_number", op: opContains, value: filter.TrackingNumber},
		{column: "carrier", op: opContains, value: filter.Carrier},
		{column: "guest_name", op: opContains, value: filter.GuestName},
		{column: "room_number", op: opContains, value: filter.RoomNumber},
		{column: "guest_phone", op: opContains, value: filter.GuestPhone},
		{column: "status", op: opEquals, value: filter.Status.String()},
	}

	predicates := make([]predicate, 0, len(candidates))
	for _, p := range candidates {
		if p.value != "" {
			predicates = append(predicates, p)
		}
	}
	return predicates
}

func (p predicate) toSqlizer() sq.Sqlizer {
	switch p.op {
	case opContains:
		return sq.Like{p.column: "%" + likeEscaper.Replace(p.value) + "%"}
	default:
		return sq.Eq{p.column: p.value}
	}
}

func applyPredicates(builder sq.SelectBuilder, predicates []predicate) sq.SelectBuilder {
	for _, p := range predicates {
		builder = builder.Where(p.toSqlizer())
	}
	return builder
}
