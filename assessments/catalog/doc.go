/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package catalog defines the static assessment catalog: the assessments a
page can be tested against and the requirements each one is made of.

Catalogs are read-only once constructed. They are usually loaded from YAML:

	assessments:
	  - key: headings
	    title: Headings
	    extensions: [instance-count]
	    requirements:
	      - key: headingFunction
	        name: Heading function
	        order: 1
	        description: Elements that look like headings are coded as headings.
	        guidanceLinks:
	          - text: WCAG 1.3.1
	            href: https://www.w3.org/WAI/WCAG21/Understanding/info-and-relationships
	        defaultMessage: no-matching-instances
	        reportInstanceFields:
	          - label: Heading text
	            source: property
	            property: headingText

Default returns the catalog embedded in this package.
*/
package catalog
