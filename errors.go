/*
 Copyright (C) 2025 Douglas Wayne Potter

 This program is free software: you can redistribute it and/or modify
 it under the terms of the GNU Affero General Public License as
 published by the Free Software Foundation, either version 3 of the
 License, or (at your option) any later version.

 This program is distributed in the hope that it will be useful,
 but WITHOUT ANY WARRANTY; without even the implied warranty of
 MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 GNU Affero General Public License for more details.

 You should have received a copy of the GNU Affero General Public License
 along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

package assign

import "errors"

var (
	// ErrInvalidShape indicates a malformed matrix: negative dimensions,
	// a data slice of the wrong length, or a shape a particular solver
	// cannot accept (e.g. more rows than columns for SolveWithDuals).
	ErrInvalidShape = errors.New("expected a valid 2-d cost matrix")

	// ErrInvalidValue indicates a matrix containing NaN or -Inf entries.
	// +Inf is allowed and marks a forbidden assignment.
	ErrInvalidValue = errors.New("matrix contains invalid numeric entries")

	// ErrInfeasible indicates that no complete assignment of finite cost
	// exists.
	ErrInfeasible = errors.New("cost matrix is infeasible")
)
