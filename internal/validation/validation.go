// Package validation checks the raw JSON payloads of the write
// endpoints. Each request shape has one function that either returns
// a typed value set or an Errors map with one human-readable message
// per offending field. Inputs arrive as map[string]any straight from
// the JSON decoder, so numeric fields are float64 and anything else
// (strings, booleans, missing keys) must produce a field message
// rather than a decode failure.
package validation

// Errors maps a field name to the reason it was rejected. It doubles
// as the error value: a nil map means the payload passed.
type Errors map[string]string

func (e Errors) Error() string { return "validation failed" }

// RentValues is the typed result of a valid rent payload.
type RentValues struct {
	UserID  uint64
	MovieID uint64
}

// RateValues is the typed result of a valid rate payload.
type RateValues struct {
	UserID  uint64
	MovieID uint64
	Rating  float64
}

// RentRequest validates user_id and movie_id: both required positive
// integers.
func RentRequest(data map[string]any) (RentValues, Errors) {
	errs := Errors{}
	uid := positiveInt(data, "user_id", "user_id must be a positive integer", errs)
	mid := positiveInt(data, "movie_id", "movie_id must be a positive integer", errs)
	if len(errs) > 0 {
		return RentValues{}, errs
	}
	return RentValues{UserID: uid, MovieID: mid}, nil
}

// RateRequest validates user_id, movie_id and rating: the ids as in
// RentRequest, the rating a required number in [0,5].
func RateRequest(data map[string]any) (RateValues, Errors) {
	errs := Errors{}
	uid := positiveInt(data, "user_id", "user_id must be a positive integer", errs)
	mid := positiveInt(data, "movie_id", "movie_id must be a positive integer", errs)

	var rating float64
	v, ok := data["rating"]
	if !ok {
		errs["rating"] = "rating is required"
	} else if f, isNum := v.(float64); !isNum {
		errs["rating"] = "rating must be a number between 0 and 5"
	} else if f < 0 || f > 5 {
		errs["rating"] = "rating must be a number between 0 and 5"
	} else {
		rating = f
	}

	if len(errs) > 0 {
		return RateValues{}, errs
	}
	return RateValues{UserID: uid, MovieID: mid, Rating: rating}, nil
}

// positiveInt extracts a required integer >= 1 from the payload,
// recording msg under the field name on any failure. JSON numbers
// decode as float64, so integrality is checked by truncation.
func positiveInt(data map[string]any, field, msg string, errs Errors) uint64 {
	v, ok := data[field]
	if !ok {
		errs[field] = field + " is required"
		return 0
	}
	f, isNum := v.(float64)
	if !isNum || f != float64(int64(f)) || f < 1 {
		errs[field] = msg
		return 0
	}
	return uint64(f)
}
