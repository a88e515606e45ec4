// Package dashsearch stores text records and finds them by meaning.
//
// A Client combines an Embedder (DashScope text-embedding, dense and sparse
// output) with a VectorStore (DashVector). AddRecord embeds the record text
// and upserts one document whose reserved field ContentField carries the
// text; Search embeds the query and runs a hybrid dense+sparse query,
// optionally restricted by exact-match tags.
//
//	client, err := dashsearch.NewClientFromConfig(dashsearch.NewConfig())
//	if err != nil {
//	    return err
//	}
//
//	if err := client.CreateCollection(ctx, "poems", map[string]dashvector.FieldType{
//	    "author": dashvector.FieldTypeString,
//	}); err != nil {
//	    return err
//	}
//	if err := client.WaitCollectionReady(ctx, "poems", dashvector.DefaultReadyPollInterval); err != nil {
//	    return err
//	}
//
//	id, err := client.AddRecord(ctx, "poems", dashsearch.Record{
//	    Content: "Before my bed the moonlight glows",
//	    Fields:  map[string]any{"author": "Li Bai"},
//	})
//
//	records, err := client.Search(ctx, "poems", "missing home",
//	    dashsearch.WithTopK(3),
//	    dashsearch.WithTagFilters(map[string]string{"author": "Li Bai"}),
//	)
//
// With fx, include FXModule (and optionally logger.FXModule and
// metrics.FXModule) and depend on *dashsearch.Client.
package dashsearch
