package types

import "github.com/aarondl/null/v8"

// Opt* различают три состояния поля в JSON-запросе: поле не передано (Set == false),
// передан null (Set и !Valid — очистка) и передано значение (Set и Valid).
// Обычный указатель склеивает первые два случая, а для финансовых полей
// "не трогать" и "очистить" — разные операции.

type OptFloat struct {
	Set bool
	null.Float64
}

func (o *OptFloat) UnmarshalJSON(data []byte) error {
	o.Set = true
	return o.Float64.UnmarshalJSON(data)
}

type OptInt struct {
	Set bool
	null.Int64
}

func (o *OptInt) UnmarshalJSON(data []byte) error {
	o.Set = true
	return o.Int64.UnmarshalJSON(data)
}

type OptString struct {
	Set bool
	null.String
}

func (o *OptString) UnmarshalJSON(data []byte) error {
	o.Set = true
	return o.String.UnmarshalJSON(data)
}

type OptTime struct {
	Set bool
	null.Time
}

func (o *OptTime) UnmarshalJSON(data []byte) error {
	o.Set = true
	return o.Time.UnmarshalJSON(data)
}
