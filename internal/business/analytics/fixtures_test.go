package analytics

import "github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/pkg/model"

// student builds a record with every band derived the way the loader does.
func student(id, gender string, age int, platform string, usage, score, mental, sleep float64) model.StudentRecord {
	tags := model.VulnerableTagsFor(gender, age)
	return model.StudentRecord{
		StudentID:             id,
		Gender:                gender,
		Age:                   age,
		AgeGroup:              model.AgeGroupFor(age),
		Country:               "Indonesia",
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
		AcademicImpactLabel:   model.AcademicImpacted,
		AcademicImpacted:      true,
	}
}

func sampleRecords() []model.StudentRecord {
	return []model.StudentRecord{
		student("S1", model.GenderFemale, 19, "Visual/Foto", 6.5, 9.0, 4, 5.5),
		student("S2", model.GenderMale, 22, "Profesional", 1.5, 3.0, 9, 8.0),
		student("S3", model.GenderFemale, 23, "Video Pendek", 5.0, 7.0, 5, 6.5),
		student("S4", model.GenderMale, 18, "Video Pendek", 7.0, 8.67, 3, 4.5),
		student("S5", model.GenderFemale, 20, "Visual/Foto", 3.0, 6.0, 7, 7.5),
		student("S6", model.GenderMale, 24, "Pesan Instan", 2.5, 5.0, 8, 9.5),
	}
}

func ids(records []model.StudentRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.StudentID)
	}
	return out
}
