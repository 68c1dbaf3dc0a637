package http

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"flightdelay/flights"
)

// predictionCache memoizes per-record labels. The model is immutable for
// the process lifetime, so cached entries never go stale.
var predictionCache *lru.Cache[string, int]

func initPredictionCache(size int) {
	if size <= 0 {
		predictionCache = nil
		return
	}
	cache, err := lru.New[string, int](size)
	if err != nil {
		// lru.New only fails on a non-positive size.
		predictionCache = nil
		return
	}
	predictionCache = cache
}

func cacheKey(record flights.FlightRecord) string {
	return fmt.Sprintf("%s|%d|%s", record.Airline, record.Month, record.FlightType)
}

func cacheGet(record flights.FlightRecord) (int, bool) {
	if predictionCache == nil {
		return 0, false
	}
	return predictionCache.Get(cacheKey(record))
}

func cacheAdd(record flights.FlightRecord, label int) {
	if predictionCache == nil {
		return
	}
	predictionCache.Add(cacheKey(record), label)
}
