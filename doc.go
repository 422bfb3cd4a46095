// Package clusterbench builds synthetic clustering-as-optimization
// benchmark problems.
//
// Given a dataset of points and a cluster count k, it produces a bounded
// minimization problem over the unit cube [0,1]^(k*D): the objective scores
// a flat vector of k candidate centers against the min-max normalized
// dataset, and the returned Scaler maps solutions back to the dataset's
// original coordinate scale.
//
// # Quick Start
//
// A custom dataset:
//
//	data := mat.NewDense(3, 2, []float64{0, 0, 2, 2, 4, 4})
//	p, scaler, _ := clusterbench.CreateProblem(dataset.FromMatrix(data), 1)
//	y, _ := p.Evaluate([]float64{0.5, 0.5})
//	centers, _ := scaler.Retransform([]float64{0.5, 0.5}, 1)
//
// A catalog dataset by ID:
//
//	p, scaler, _ := clusterbench.GetProblem(1, 3)
//
// The whole baseline suite (downloads the benchmark archive on first use):
//
//	problems, _ := clusterbench.LoadProblems()
//	for name, entry := range problems {
//	    fmt.Println(name, entry.Problem.MetaData().Dimension)
//	}
//
// clusterbench does not implement clustering or optimization algorithms;
// it only prepares problem instances for an external optimizer to consume.
package clusterbench
