package psdimage

// Tree assembly: a single top down walk over the grouped record
// description, instantiating one typed node per record. Records with
// an unknown kind tag are diagnosed and skipped entirely; clip
// records are attached to the clip list of the sibling they follow,
// not inserted in z-order.

func (d *Document) assemble() {
	root := &Group{layerBase: layerBase{doc: d, index: -1, kind: KindGroup}}
	d.root = root
	d.fillGroup(root, d.decoded.Grouped)
}

func (d *Document) fillGroup(group *Group, records []GroupedLayer) {
	for i := range records {
		rec := &records[i]
		child := d.makeLayer(group, rec)
		if child == nil {
			continue
		}
		group.children = append(group.children, child)
		for j := range rec.Clip {
			clip := d.makeLayer(group, &rec.Clip[j])
			if clip == nil {
				continue
			}
			base := child.base()
			base.clip = append(base.clip, clip)
		}
	}
}

func (d *Document) makeLayer(parent *Group, rec *GroupedLayer) Layer {
	common := layerBase{doc: d, parent: parent, index: rec.Index, kind: rec.Kind}
	switch rec.Kind {
	case KindGroup:
		group := &Group{layerBase: common}
		d.fillGroup(group, rec.Layers)
		return group
	case KindPixel:
		return &PixelLayer{common}
	case KindShape:
		return &ShapeLayer{common}
	case KindType:
		return &TypeLayer{common}
	case KindSmartObject:
		return &SmartObjectLayer{common}
	case KindAdjustment:
		return &AdjustmentLayer{common}
	default:
		name := ""
		if rec.Index >= 0 && rec.Index < len(d.decoded.Records) {
			name = d.decoded.Records[rec.Index].Name
		}
		d.diags.add(SeverityCritical, name, "unknown layer kind %q", rec.Kind)
		return nil
	}
}
