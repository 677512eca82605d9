// Package routes turns a directory of route files into an ordered
// registration plan.
//
// A route file is named after the path and verb it serves:
//
//	~users~:id~GET.js   → GET /users/:id
//	~health~HEAD.js     → HEAD /health
//
// Loading runs four pure stages: Discover lists eligible entries, Parse
// turns each name into a [models.RouteDescriptor], Order sorts descriptors
// so that literal routes are registered before parameterized ones, and
// Synthesize adds the implicit HEAD and OPTIONS entries. The resulting plan
// is bound to handlers from a [Registry] by the HTTP layer.
package routes
