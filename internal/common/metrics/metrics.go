package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Logins counts authentication attempts by outcome.
	Logins = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "educross_logins_total",
		Help: "Authentication attempts by result.",
	}, []string{"result"})

	// Submissions counts graded submissions by activity kind and outcome.
	Submissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "educross_submissions_graded_total",
		Help: "Graded activity submissions by kind and result.",
	}, []string{"kind", "result"})

	// CatalogMutations counts in-memory catalog edits.
	CatalogMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "educross_catalog_mutations_total",
		Help: "Teacher catalog mutations by operation.",
	}, []string{"op"})
)
