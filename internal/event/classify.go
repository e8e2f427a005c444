package event

import "regexp"

// Classification vocabulary. Matches are case-insensitive and whole-word.
// RE2 has no lookbehind, so the bare "graduação" rule uses a leading
// character-class guard to avoid matching inside "pós-graduação".
var (
	reGrad        = regexp.MustCompile(`(?i)(^|[^-\p{L}])graduação\b`)
	rePos         = regexp.MustCompile(`(?i)\bpós-graduação\b`)
	reMatricula   = regexp.MustCompile(`(?i)\bmatrícula\b`)
	reTrancamento = regexp.MustCompile(`(?i)\btrancamento\b`)
	reFeriado     = regexp.MustCompile(`(?i)\b(feriado|recesso)\b`)
	reDataLimite  = regexp.MustCompile(`(?i)\bdata-limite\b`)
)

// flagRules maps each vocabulary pattern to the flag it sets. The table is
// evaluated in order, once per title.
var flagRules = []struct {
	re   *regexp.Regexp
	flag func(*Flags) *bool
}{
	{reGrad, func(f *Flags) *bool { return &f.Grad }},
	{rePos, func(f *Flags) *bool { return &f.Pos }},
	{reMatricula, func(f *Flags) *bool { return &f.Matricula }},
	{reTrancamento, func(f *Flags) *bool { return &f.Trancamento }},
	{reFeriado, func(f *Flags) *bool { return &f.Feriado }},
}

// Classify derives the six flags from an event title. The result depends
// only on the title text.
func Classify(title string) Flags {
	var f Flags
	for _, rule := range flagRules {
		if rule.re.MatchString(title) {
			*rule.flag(&f) = true
		}
	}
	f.Importante = f.Matricula || f.Trancamento || reDataLimite.MatchString(title)
	return f
}
