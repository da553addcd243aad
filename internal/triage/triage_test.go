package triage

import "testing"

func TestAssessScoring(t *testing.T) {
	cases := []struct {
		name      string
		symptoms  string
		duration  Duration
		severity  Severity
		wantScore int
		wantLevel RiskLevel
	}{
		{"no keywords", "just feeling tired and sleepy", DurationUnderOne, SeverityMild, 0, RiskLow},
		{"empty text", "", DurationUnderOne, SeverityMild, 0, RiskLow},
		{"chest pain severe long", "chest pain", DurationOverThree, SeveritySevere, 11, RiskHigh},
		{"high fever moderate", "high fever", DurationOneToThree, SeverityModerate, 6, RiskMedium},
		{"headache only", "headache", DurationUnderOne, SeverityMild, 1, RiskLow},
		{"case insensitive", "Chest Pain today", DurationUnderOne, SeverityMild, 5, RiskMedium},
		{"overlapping keywords", "chest pain and a cold", DurationUnderOne, SeverityMild, 6, RiskMedium},
		{"substring match", "my persistent coughing fits", DurationUnderOne, SeverityMild, 1, RiskLow},
		{"bonuses alone reach medium", "", DurationOverThree, SeveritySevere, 6, RiskMedium},
		{"boundary nine is high", "severe bleeding", DurationOverThree, SeverityModerate, 9, RiskHigh},
		{"boundary eight is medium", "severe bleeding", DurationOneToThree, SeverityModerate, 8, RiskMedium},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Assess(Report{Symptoms: c.symptoms, Duration: c.duration, Severity: c.severity})
			if got.Score != c.wantScore {
				t.Fatalf("score=%d, want %d", got.Score, c.wantScore)
			}
			if got.Level != c.wantLevel {
				t.Fatalf("level=%s, want %s", got.Level, c.wantLevel)
			}
			if got.Message != riskMessages[c.wantLevel] {
				t.Fatalf("message=%q, want %q", got.Message, riskMessages[c.wantLevel])
			}
		})
	}
}

func TestAssessMonotonicInScore(t *testing.T) {
	// Raising any single contributing factor must never lower the level.
	rank := map[RiskLevel]int{RiskLow: 0, RiskMedium: 1, RiskHigh: 2}

	texts := []string{"", "headache", "vomiting", "chest pain", "chest pain and vomiting"}
	durations := []Duration{DurationUnderOne, DurationOneToThree, DurationOverThree}
	severities := []Severity{SeverityMild, SeverityModerate, SeveritySevere}

	for _, text := range texts {
		for di, dur := range durations {
			for si, sev := range severities {
				base := Assess(Report{Symptoms: text, Duration: dur, Severity: sev})
				if di+1 < len(durations) {
					next := Assess(Report{Symptoms: text, Duration: durations[di+1], Severity: sev})
					if rank[next.Level] < rank[base.Level] {
						t.Fatalf("longer duration lowered level: %s -> %s (text=%q)", base.Level, next.Level, text)
					}
				}
				if si+1 < len(severities) {
					next := Assess(Report{Symptoms: text, Duration: dur, Severity: severities[si+1]})
					if rank[next.Level] < rank[base.Level] {
						t.Fatalf("higher severity lowered level: %s -> %s (text=%q)", base.Level, next.Level, text)
					}
				}
			}
		}
	}
}

func TestBucketTokensAreExactMatch(t *testing.T) {
	// Case variants of a bucket token earn no bonus; only keyword matching
	// in the free text is case-insensitive.
	got := Assess(Report{
		Symptoms: "chest pain",
		Duration: ParseDuration(">3"),
		Severity: ParseSeverity("Severe"),
	})
	if got.Score != 7 || got.Level != RiskMedium {
		t.Fatalf("score=%d level=%s, want 7 Medium for unrecognized severity token", got.Score, got.Level)
	}

	exact := Assess(Report{
		Symptoms: "chest pain",
		Duration: ParseDuration(">3"),
		Severity: ParseSeverity("severe"),
	})
	if exact.Score != 11 || exact.Level != RiskHigh {
		t.Fatalf("score=%d level=%s, want 11 High for exact severity token", exact.Score, exact.Level)
	}
}

func TestParseDuration(t *testing.T) {
	cases := []struct {
		raw  string
		want Duration
	}{
		{"<1", DurationUnderOne},
		{"1-3", DurationOneToThree},
		{">3", DurationOverThree},
		{"", DurationUnderOne},
		{"forever", DurationUnderOne},
	}
	for _, c := range cases {
		if got := ParseDuration(c.raw); got != c.want {
			t.Fatalf("ParseDuration(%q)=%q, want %q", c.raw, got, c.want)
		}
	}
}

func TestParseSeverity(t *testing.T) {
	cases := []struct {
		raw  string
		want Severity
	}{
		{"mild", SeverityMild},
		{"moderate", SeverityModerate},
		{"severe", SeveritySevere},
		{"Severe", SeverityMild},
		{"", SeverityMild},
		{"catastrophic", SeverityMild},
	}
	for _, c := range cases {
		if got := ParseSeverity(c.raw); got != c.want {
			t.Fatalf("ParseSeverity(%q)=%q, want %q", c.raw, got, c.want)
		}
	}
}
