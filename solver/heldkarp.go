package solver

import "context"

// heldKarp solves the open-path variant of the ordering problem with the
// subset dynamic program: fixed start at the entrance, fixed end at the exit.
//
// dp[mask][j] is the cheapest cost of leaving the entrance, visiting exactly
// the waypoints in mask, and standing on waypoint j (j in mask).
//
// Time O(n²·2ⁿ), memory O(n·2ⁿ).
func heldKarp(ctx context.Context, plan Plan, cache *PathCache) ([]int, int64, error) {
	n := len(plan.Waypoints)
	if n == 0 {
		c, ok := cache.cost(plan.Entrance, plan.Exit)
		if !ok {
			return nil, 0, ErrNoSolution
		}
		return []int{}, c, nil
	}

	// dist[i][j] between waypoints, plus the entrance and exit columns.
	cell := func(i int) int { return plan.Waypoints[i].Cell }
	dist := make([][]int64, n)
	fromEntrance := make([]int64, n)
	toExit := make([]int64, n)
	for i := 0; i < n; i++ {
		dist[i] = make([]int64, n)
		for j := 0; j < n; j++ {
			dist[i][j], _ = cache.cost(cell(i), cell(j))
		}
		fromEntrance[i], _ = cache.cost(plan.Entrance, cell(i))
		toExit[i], _ = cache.cost(cell(i), plan.Exit)
	}

	full := 1<<n - 1
	dp := make([][]int64, full+1)
	parent := make([][]int, full+1)
	for mask := range dp {
		dp[mask] = make([]int64, n)
		parent[mask] = make([]int, n)
		for j := range dp[mask] {
			dp[mask][j] = Unreachable
			parent[mask][j] = -1
		}
	}
	for j := 0; j < n; j++ {
		dp[1<<j][j] = fromEntrance[j]
	}

	for mask := 1; mask <= full; mask++ {
		if mask%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, 0, err
			}
		}
		for j := 0; j < n; j++ {
			if mask&(1<<j) == 0 {
				continue
			}
			prevMask := mask ^ (1 << j)
			if prevMask == 0 {
				continue
			}
			for k := 0; k < n; k++ {
				if prevMask&(1<<k) == 0 {
					continue
				}
				if dp[prevMask][k] == Unreachable || dist[k][j] == Unreachable {
					continue
				}
				if cand := dp[prevMask][k] + dist[k][j]; cand < dp[mask][j] {
					dp[mask][j] = cand
					parent[mask][j] = k
				}
			}
		}
	}

	best, last := Unreachable, -1
	for j := 0; j < n; j++ {
		if dp[full][j] == Unreachable || toExit[j] == Unreachable {
			continue
		}
		if total := dp[full][j] + toExit[j]; total < best {
			best, last = total, j
		}
	}
	if last < 0 {
		return nil, 0, ErrNoSolution
	}

	order := make([]int, n)
	mask, j := full, last
	for i := n - 1; i >= 0; i-- {
		order[i] = j
		p := parent[mask][j]
		mask ^= 1 << j
		j = p
	}
	return order, best, nil
}
