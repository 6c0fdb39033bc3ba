// Rowset exports tables from SQL sources into delimited text and other
// row-oriented formats, and bundles the results into archives.
//
// Usage:
//
//	# Export a whole table to CSV
//	rowset export --connection observations --table MonitoringSites
//
//	# Export selected fields with a filter
//	rowset export -c observations -t MonitoringSites \
//	    --fields "SiteId;SiteLocation" --where "Region = 'North'" -o sites.csv
//
//	# Preview a table in the terminal
//	rowset preview -c observations -t MonitoringSites --limit 20
//
//	# Bundle exported files into a zip archive
//	rowset archive sites.csv readings.csv -o bundle.zip
//
//	# List the tables a connection exposes
//	rowset tables -c observations
package main

func main() {
	Execute()
}
