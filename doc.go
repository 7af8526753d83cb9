/*
Copyright © 2026 the NZIP analysis authors.
This file is part of the NZIP analysis toolkit.

The NZIP analysis toolkit is free software: you can redistribute it
and/or modify it under the terms of the GNU General Public License as
published by the Free Software Foundation, either version 3 of the
License, or (at your option) any later version.

The NZIP analysis toolkit is distributed in the hope that it will be
useful, but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with the NZIP analysis toolkit.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package nzip provides tools for analyzing Net-Zero Industrial
// Pathways (NZIP) scenario results and related tabular energy and
// emissions datasets.
//
// NZIP results are wide tables: one row per industrial site and one
// column per variable, where time-varying variables appear as one
// column per year with the year appended to the column name (for
// example "Total natural gas use (GWh) 2034"). This package holds the
// in-memory table model, readers for the CSV and Excel files the
// results are distributed as, and the column classification and
// annual-series extraction operations the analysis packages are built
// on. The packages scenario, macc, and stocktake build domain analyses
// on top of it.
package nzip

// Version gives the version number of this toolkit.
const Version = "0.1.0"
