package templates

import "strings"

func pageTitle(title string) string {
	if title == "" {
		return "Board Games"
	}
	return title
}

func filterButtonClass(active bool) string {
	if active {
		return "filter-button cursor-pointer px-2 py-1 text-gray-700 border-b-2"
	}
	return "filter-button cursor-pointer px-2 py-1 text-gray-700"
}

func cellClass(c CellData) string {
	classes := []string{c.Bucket, "cell flex flex-col mx-4 my-1 md:my-2 p-4 justify-between", c.Color, "bg-opacity-25"}
	if c.Open {
		classes = append(classes, "activeCell")
	}
	return strings.TrimSpace(strings.Join(classes, " "))
}

func descriptionClass(open bool) string {
	if open {
		return "description max-h-0 overflow-hidden transition-all ease-in-out duration-600 show"
	}
	return "description max-h-0 overflow-hidden transition-all ease-in-out duration-600"
}
