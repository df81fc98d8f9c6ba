package util

type Envelope map[string]any

func Error(message string) Envelope {
	return Envelope{"error": message}
}

func Data(value any) Envelope {
	return Envelope{"data": value}
}

// List wraps a collection payload with the count/empty meta block every
// listing endpoint carries.
func List(rows any, count int) Envelope {
	return Envelope{
		"data": rows,
		"meta": Envelope{
			"count": count,
			"empty": count == 0,
		},
	}
}
