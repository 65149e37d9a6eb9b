package service

import (
	"context"
	"hash/fnv"
	"time"

	"farmlytic/internal/domain/entity"
)

// WeatherService reports conditions for a field location.
type WeatherService interface {
	Current(ctx context.Context, location string) (*entity.WeatherSnapshot, error)
}

// mockWeatherService derives a stable reading from the location and the
// current hour. There is no real weather integration; the readings only
// need to be plausible and repeatable within the hour.
type mockWeatherService struct {
	now func() time.Time
}

func NewMockWeatherService() WeatherService {
	return &mockWeatherService{now: time.Now}
}

var conditions = []string{"clear", "partly cloudy", "overcast", "light rain", "rain", "windy"}

func (s *mockWeatherService) Current(ctx context.Context, location string) (*entity.WeatherSnapshot, error) {
	now := s.now()

	h := fnv.New32a()
	h.Write([]byte(location))
	h.Write([]byte(now.Format("2006-01-02T15")))
	seed := h.Sum32()

	return &entity.WeatherSnapshot{
		Location:    location,
		Temperature: 12 + float64(seed%200)/10, // 12.0 - 31.9 C
		Humidity:    35 + int(seed/7%50),       // 35 - 84 %
		WindSpeed:   float64(seed/13%120) / 10, // 0 - 11.9 m/s
		Condition:   conditions[seed/31%uint32(len(conditions))],
		ObservedAt:  now,
	}, nil
}
