// Package rules provides the built-in semantic rules for gosemlint.
//
// # Rule Domains
//
//   - Landmarks:
//
//   - SEM001: single-main - A page must contain at most one <main> landmark
//
//   - SEM002: landmark-presence - A page should declare a <main> or <header>
//
//   - Headings:
//
//   - SEM003: heading-increment - Heading levels should only increment by one
//
//   - SEM004: section-heading - A <section> should be labelled by a heading
//
//   - SEM011: single-h1 - Multiple top-level headings in the same document
//
//   - Interactive elements:
//
//   - SEM005: no-interactive-div - No scripted <div>/<span> controls
//
//   - SEM008: anchor-href - Scripted anchors need a real destination
//
//   - Nesting:
//
//   - SEM006: article-in-paragraph - <article> must not open inside <p>
//
//   - Media:
//
//   - SEM007: img-alt - Images must declare an alt attribute
//
//   - Structure:
//
//   - SEM009: no-duplicate-id - id values must be unique
//
//   - SEM010: list-structure - Lists must contain only list items
//
// # Registration
//
// Rules are registered with the default registry via RegisterAll. Each
// rule follows the lint.Rule interface and uses the RuleContext and
// DiagnosticBuilder infrastructure. Rules are pure functions over the
// document snapshot: they share no state, so registering a new rule
// cannot change the output of an existing one.
package rules
