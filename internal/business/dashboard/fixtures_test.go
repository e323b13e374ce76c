package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/internal/business/dataset"
	"github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/internal/platform/cache"
	"github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/pkg/model"
)

func student(id, gender string, age int, country, platform string, usage, score, mental, sleep float64) model.StudentRecord {
	tags := model.VulnerableTagsFor(gender, age)
	label := model.AcademicNotImpacted
	if usage > model.HighUsageHours {
		label = model.AcademicImpacted
	}
	return model.StudentRecord{
		StudentID:             id,
		Gender:                gender,
		Age:                   age,
		AgeGroup:              model.AgeGroupFor(age),
		Country:               country,
		PlatformType:          platform,
		AvgDailyUsageHours:    usage,
		UsageDurationCategory: model.UsageCategoryFor(usage),
		AddictedScore:         score,
		AddictionLevel:        model.AddictionLevelFor(score),
		HighRiskAddiction:     model.IsHighRisk(score),
		MentalHealthScore:     mental,
		MentalHealthDetail:    model.MentalHealthDetailFor(mental),
		SleepHoursPerNight:    sleep,
		SleepQualityDetail:    model.SleepQualityFor(sleep),
		Vulnerable:            tags,
		VulnerableGroup:       tags.Label(),
		AcademicImpactLabel:   label,
		AcademicImpacted:      label == model.AcademicImpacted,
	}
}

func sampleRecords() []model.StudentRecord {
	return []model.StudentRecord{
		student("S1", model.GenderFemale, 19, "Indonesia", "Visual/Foto", 6.5, 9.0, 4, 5.5),
		student("S2", model.GenderMale, 22, "Indonesia", "Profesional", 1.5, 3.0, 9, 8.0),
		student("S3", model.GenderFemale, 23, "Indonesia", "Video Pendek", 5.0, 7.0, 5, 6.5),
		student("S4", model.GenderMale, 18, "Indonesia", "Video Pendek", 7.0, 8.67, 3, 4.5),
		student("S5", model.GenderFemale, 20, "Indonesia", "Visual/Foto", 3.0, 6.0, 7, 7.5),
		student("S6", model.GenderMale, 24, "Malaysia", "Pesan Instan", 2.5, 5.0, 8, 9.5),
	}
}

type fakeProvider struct {
	ds  *dataset.Dataset
	err error
}

func (f fakeProvider) Current(context.Context) (*dataset.Dataset, error) {
	return f.ds, f.err
}

func newProvider(records []model.StudentRecord) fakeProvider {
	return fakeProvider{ds: &dataset.Dataset{
		Info:    model.DatasetInfo{Source: "test", Fingerprint: "fp", Records: len(records)},
		Records: records,
	}}
}

// memoryCache stores JSON like the Redis cache does.
type memoryCache struct {
	mu      sync.Mutex
	data    map[string][]byte
	gets    int
	sets    int
	failGet bool
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string][]byte{}}
}

func (m *memoryCache) Get(_ context.Context, key string, dest interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gets++
	if m.failGet {
		return errors.New("connection refused")
	}
	data, ok := m.data[key]
	if !ok {
		return cache.ErrCacheMiss
	}
	return json.Unmarshal(data, dest)
}

func (m *memoryCache) Set(_ context.Context, key string, value interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sets++
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = data
	return nil
}
