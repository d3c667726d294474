package ldse

func i64(v int64) *int64 { return &v }

func rankOrderOf(ds Dataspace) []string {
	order := make([]string, len(ds.Ranks))
	for i, r := range ds.Ranks {
		order[i] = r.Name
	}
	return order
}
