// Package jobmatch scores how well a resume matches a job description.
//
// Scoring is deterministic keyword matching: both texts are normalized,
// weighted keywords and bigrams are extracted, and the job terms are
// matched against the resume exactly, through a synonym thesaurus, and by
// partial containment. Coverage and word overlap combine into a 0-100 score.
//
//	res := jobmatch.Match(resumeText, jobText)
//	fmt.Println(res.Score, res.MatchedKeywords)
//
// A Matcher can be configured with extra synonyms, weights, logging and
// Prometheus metrics:
//
//	m, _ := jobmatch.New(
//	    jobmatch.WithSynonyms(map[string][]string{"golang": {"go"}}),
//	    jobmatch.WithPrometheus(prometheus.DefaultRegisterer),
//	)
//	res := m.Match(resumeText, jobText)
package jobmatch
