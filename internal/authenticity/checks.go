package authenticity

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Each check in this file is a pure function from resume text to a list of
// issue descriptions. Checks never communicate with each other; the engine in
// report.go buckets their outputs as red or yellow by check identity.

var yearPattern = regexp.MustCompile(`\b(19|20)\d{2}\b`)

// extractYears returns every 4-digit year in the 1900-2099 range found in text.
func extractYears(text string) []int {
	matches := yearPattern.FindAllString(text, -1)
	years := make([]int, 0, len(matches))
	for _, m := range matches {
		y, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		years = append(years, y)
	}
	return years
}

// CheckTimeline flags implausible employment timelines: future dates, career
// spans over 50 years, overlapping employment windows and the absence of any
// current-position marker.
func CheckTimeline(resumeText string) []string {
	var issues []string
	lower := strings.ToLower(resumeText)
	years := extractYears(resumeText)
	currentYear := time.Now().Year()

	if len(years) > 0 {
		minYear, maxYear := years[0], years[0]
		future := false
		for _, y := range years {
			if y > currentYear {
				future = true
			}
			if y < minYear {
				minYear = y
			}
			if y > maxYear {
				maxYear = y
			}
		}
		if future {
			issues = append(issues, "Future dates found")
		}
		if maxYear-minYear > 50 {
			issues = append(issues, "Unrealistic career span")
		}
		if len(years) >= 4 {
			sorted := append([]int(nil), years...)
			sort.Ints(sorted)
			for i := 0; i+3 < len(sorted); i += 2 {
				if sorted[i+2] < sorted[i+1] {
					issues = append(issues, "Overlapping employment periods detected")
				}
			}
		}

		markers := []string{strconv.Itoa(currentYear), "present", "current", "now"}
		hasCurrent := false
		for _, m := range markers {
			if strings.Contains(lower, m) {
				hasCurrent = true
				break
			}
		}
		if !hasCurrent {
			issues = append(issues, "No current position indicated")
		}
	}

	return issues
}

var suspiciousDegreeSources = []string{
	"university of phoenix", "online degree", "diploma mill", "life experience degree",
}

var degreeKeywords = []string{"bachelor", "master", "phd", "doctorate", "bs", "ms", "ba", "ma"}

// CheckEducation flags diploma-mill style institutions and degrees claimed
// without any educational institution.
func CheckEducation(resumeText string) []string {
	var issues []string
	lower := strings.ToLower(resumeText)

	for _, source := range suspiciousDegreeSources {
		if strings.Contains(lower, source) {
			issues = append(issues, fmt.Sprintf("Suspicious education source: %s", source))
		}
	}

	hasInstitution := strings.Contains(lower, "university") || strings.Contains(lower, "college")
	for _, keyword := range degreeKeywords {
		if strings.Contains(lower, keyword) && !hasInstitution {
			issues = append(issues, fmt.Sprintf("Degree mentioned (%s) but no educational institution specified", keyword))
		}
	}

	return issues
}

// advancedSkills maps domain skills to the supporting technologies expected
// alongside them. Kept as an ordered slice so flag output is deterministic.
var advancedSkills = []struct {
	skill string
	techs []string
}{
	{"machine learning", []string{"tensorflow", "pytorch", "scikit-learn"}},
	{"blockchain", []string{"solidity", "smart contracts"}},
	{"quantum computing", []string{"qiskit", "quantum"}},
}

var expertWords = []string{"expert", "advanced", "specialist", "guru", "ninja"}

// CheckSkillConsistency flags advanced skills claimed without any supporting
// technology and resumes stuffed with expert-level adjectives.
func CheckSkillConsistency(resumeText string) []string {
	var issues []string
	lower := strings.ToLower(resumeText)

	for _, entry := range advancedSkills {
		if !strings.Contains(lower, entry.skill) {
			continue
		}
		supported := false
		for _, tech := range entry.techs {
			if strings.Contains(lower, tech) {
				supported = true
				break
			}
		}
		if !supported {
			issues = append(issues, fmt.Sprintf("Advanced skill '%s' mentioned without supporting technologies", entry.skill))
		}
	}

	if countContained(lower, expertWords) > 5 {
		issues = append(issues, "Too many 'expert-level' claims")
	}

	return issues
}

var genericPhrases = []string{
	"results-oriented professional", "proven track record", "team player",
	"strong work ethic", "fast learner", "challenging position",
}

var presentTenseVerbs = []string{"manage", "lead", "develop", "work", "collaborate"}
var pastTenseVerbs = []string{"managed", "led", "developed", "worked", "collaborated"}

var buzzwords = []string{"synergy", "leverage", "paradigm", "disrupt", "innovative", "cutting-edge"}

// CheckWritingPatterns flags template-style boilerplate, mixed verb tenses
// and buzzword-heavy writing.
func CheckWritingPatterns(resumeText string) []string {
	var issues []string
	lower := strings.ToLower(resumeText)

	if countContained(lower, genericPhrases) > 3 {
		issues = append(issues, "Too many generic phrases (template detected)")
	}
	if countContained(lower, presentTenseVerbs) >= 3 && countContained(lower, pastTenseVerbs) >= 3 {
		issues = append(issues, "Inconsistent tense usage")
	}
	if countContained(lower, buzzwords) > 5 {
		issues = append(issues, "High buzzword density")
	}

	return issues
}

var seniorTitles = []string{"ceo", "cto", "vp", "director", "head", "senior"}

// CheckOverqualification flags an implausible number of senior titles packed
// into a short career span.
func CheckOverqualification(resumeText string) []string {
	var issues []string
	lower := strings.ToLower(resumeText)

	seniorCount := countContained(lower, seniorTitles)
	if seniorCount > 3 {
		years := extractYears(resumeText)
		if len(years) > 0 {
			minYear, maxYear := years[0], years[0]
			for _, y := range years {
				if y < minYear {
					minYear = y
				}
				if y > maxYear {
					maxYear = y
				}
			}
			if maxYear-minYear < 8 {
				issues = append(issues, fmt.Sprintf("Rapid career progression (%d senior roles in short time)", seniorCount))
			}
		}
	}

	return issues
}

var famousCompanies = []string{"google", "microsoft", "amazon", "apple", "meta", "tesla"}
var roleKeywords = []string{"engineer", "manager", "scientist"}

// CheckCompanyRoles flags famous companies named without any concrete role title.
func CheckCompanyRoles(resumeText string) []string {
	var issues []string
	lower := strings.ToLower(resumeText)

	hasRole := false
	for _, role := range roleKeywords {
		if strings.Contains(lower, role) {
			hasRole = true
			break
		}
	}
	if hasRole {
		return issues
	}

	for _, company := range famousCompanies {
		if strings.Contains(lower, company) {
			issues = append(issues, fmt.Sprintf("Famous company (%s) but vague role description", company))
		}
	}

	return issues
}

// countContained counts how many distinct terms appear in the lower-cased text.
func countContained(lower string, terms []string) int {
	count := 0
	for _, term := range terms {
		if strings.Contains(lower, term) {
			count++
		}
	}
	return count
}
