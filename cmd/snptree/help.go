// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package main

import "github.com/js-arias/command"

func init() {
	app.Add(colorKeyGuide)
	app.Add(dataFilesGuide)
	app.Add(projectsGuide)
	app.Add(settingsGuide)
}

var projectsGuide = &command.Command{
	Usage: "projects",
	Short: "about project files",
	Long: `
SnpTree requires several files to draw a sample tree. To reduce the burden of
keeping track of many files, a single project file is used to hold the
reference of all files required to draw the tree. This guide explains the
structure of the file, but most of the time, the best and most secure way to
edit or view this file is by using snptree commands.

A project file is a tab-delimited file with the following fields:

	- dataset  for the kind of file
	- path     for the path of the file

Here is an example file:

	# snptree project files
	dataset	path
	distances	snp-dists.tsv
	metadata	metadata.csv
	settings	settings.tab
	trees	tree.nwk

The valid file types are:

- Distance matrices. Defined by the dataset keyword "distances". This file
  contains the pairwise distances between samples (usually the number of SNP
  differences). The recommended way to add a distance matrix is by using the
  command 'snptree add'.
- Color keys. Defined by the dataset keyword "keys". This optional file
  contains fixed colors for some category values.
- Sample metadata. Defined by the dataset keyword "metadata". This file
  contains the metadata of the samples, one row per sample.
- Settings. Defined by the dataset keyword "settings". This optional file
  contains the parameters used to draw the tree.
- Trees. Defined by the dataset keyword "trees". This file contains one or
  more trees, either in Newick format, or as a tab-delimited file of
  time-calibrated trees.
	`,
}

var dataFilesGuide = &command.Command{
	Usage: "data-files",
	Short: "about metadata and distance files",
	Long: `
Metadata tables and distance matrices are delimited text files, usually
exported from a spreadsheet or produced by tools such as snp-dists. The field
separator (a tab, a comma, or a semicolon) is detected from the header of the
file. Lines starting with '#' are ignored. If the file is not encoded as
UTF-8, it is read as Windows-1252.

A metadata table has a header with the column names, and one row per sample.
One column is the identity column, with the sample identifiers used in the
tree and in the distance matrix. By default the first column is the identity
column, use the flag --id in the commands to set a different column. Here is
an example file:

	id,country,collection_date
	S1,Chile,2021-03-01
	S2,Peru,2020-11-15

A column with "date" in its name is read as a date column. Dates can be
written year first (2021-03-01, 2021/03/01, 2021-03, 2021), day first
(01-03-2021, 01/03/2021), or with month names (1 March 2021, Mar 2021).

A distance matrix is a square table. The first row is the header with the
sample identifiers (the first field is ignored), and each row starts with a
sample identifier, in the same order as the header. Empty cells, or cells
with "NA", are taken as unknown distances. Here is an example file:

	snp-dists 0.8.2	S1	S2	S3
	S1	0	3	9
	S2	3	0	6
	S3	9	6	0
	`,
}

var colorKeyGuide = &command.Command{
	Usage: "color-keys",
	Short: "about color key files",
	Long: `
By default, each distinct value of a category column is assigned a color from
a palette of 48 colors, in the sorted order of the values. A color key file
can be used to set a fixed color for some values.

A color key file is a tab-delimited file with the following fields:

	- value   the category value
	- color   an RGB value separated by commas, for example "125,132,148"
	- column  (optional) the metadata column of the value; if empty, the
	          color is used for the value in any column

Here is an example file:

	value	color	column	comment
	Chile	0, 84, 119	country
	Peru	251, 236, 93	country
	unknown	229, 229, 224

In this case, the comment column will be ignored.

In a SnpTree project, the file that contains the color keys is indicated with
the "keys" keyword.
	`,
}

var settingsGuide = &command.Command{
	Usage: "settings",
	Short: "about the settings file",
	Long: `
The parameters used to draw a tree are stored in a settings file. If no
settings file is defined in a project, the default values will be used. The
command "param" can be used to print or change the settings of a project.

A settings file is a tab-delimited file with the following fields:

	- parameter  the name of the parameter
	- value      the value of the parameter

The valid parameters are:

	datemark   the text that identifies date columns (default "date")
	gradient   the color gradient used for date columns, can be "jet" (the
	           default), "rainbow", "iridescent", "incandescent", or "gray"
	ladder     the way the tree is ladderized, "asc" (the default, smaller
	           clades first), "desc" (larger clades first), or "none"
	linecolor  the color of the branches (default "25,25,25")
	linewidth  the width of the branches (default 1)
	maxcats    the maximum number of categories of a column used to color
	           the nodes (default 48)
	neutral    the color of nodes without metadata (default "100,100,100")
	nodate     the color of samples without a valid date (default "0,0,0")
	step       the vertical distance between terminals (default 1)

Here is an example file:

	# snptree settings
	parameter	value
	gradient	iridescent
	ladder	desc
	neutral	200,200,200
	`,
}
