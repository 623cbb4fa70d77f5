package slices

// map each element in sli.
//
// args:
//   - sli : slice of `T`s
//   - mapper : mapping function from T to R
//
// return:
//
//	slice of `R`s.
//	each element indexed `N` is given with `mapper(sli[N])` .
func Map[T any, R any](sli []T, mapper func(v T) R) []R {
	ret := make([]R, len(sli))
	for nth, v := range sli {
		ret[nth] = mapper(v)
	}
	return ret
}

// Map over sli with mapper.
//
// If mapper causes error, return (nil, error).
//
// Otherwise, return (mapping result, nil).
func MapUntilError[T any, R any](sli []T, mapper func(v T) (R, error)) ([]R, error) {
	ret := make([]R, len(sli))
	for nth, v := range sli {
		r, err := mapper(v)
		if err != nil {
			return nil, err
		}
		ret[nth] = r
	}
	return ret, nil
}
