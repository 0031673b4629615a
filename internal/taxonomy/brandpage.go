package taxonomy

// BrandPageCategories returns the built-in taxonomy for competitor and brand
// page posts. The shared material/style/zone categories reuse the
// general-group dictionaries.
func BrandPageCategories() []Category {
	return []Category{
		{
			Name:    "goals",
			Primary: "primaryGoal",
			Tags: []Tag{
				{Name: "PRODUCT_DEMO", Phrases: []string{
					"ติดตั้งเองได้เลย", "ผู้หญิงก็ปูได้", "รีวิวของดี",
					"ทดสอบแล้ว", "พิสูจน์แล้ว", "ใช้จริงหน้างาน", "how to",
					"ทำเองได้",
				}},
				{Name: "PROMOTION_SALE", Phrases: []string{
					"big sale", "ชวนช้อป", "โปรพิเศษ", "โปรโมชัน", "ส่วนลด",
					"รับโค้ดส่วนลด", "ลดทันที", "ดีลพิเศษ", "หมวดโปร",
					"ลดแรง", "ดีลเด็ด", "flash sale", "11.11", "12.12",
				}},
				{Name: "BRAND_AWARENESS", Phrases: []string{
					"วัสดุก่อสร้างคุณภาพ", "จากตราเพชร", "ผลิตภัณฑ์ตราเพชร",
					"แบรนด์", "มั่นใจในคุณภาพ", "รับประกันคุณภาพ",
				}},
				{Name: "EDU_CONTENT", Phrases: []string{
					"เตรียมบ้านให้เย็นสบาย", "ประหยัดพลังงานได้จริง",
					"เคล็ดลับบ้านเย็น", "วิธีเลือก", "ทริกแต่งบ้าน",
					"เทคนิคเลือกวัสดุ",
				}},
				{Name: "DEALER_LOCATOR", Phrases: []string{
					"หาซื้อได้ที่", "ร้านตัวแทนจำหน่าย", "ทั่วประเทศ",
					"เช็กร้านใกล้บ้าน", "ค้นหาร้าน", "dealer",
				}},
				{Name: "CROSS_CHANNEL_PUSH", Phrases: []string{
					"สั่งซื้อได้ที่", "ผ่าน shopee", "ผ่าน lazada",
					"official store", "คลิกเลย", "shop now",
				}},
			},
		},
		{
			Name: "valueProps",
			Tags: []Tag{
				{Name: "EASY_INSTALL", Phrases: []string{
					"ติดตั้งง่าย", "ติดตั้งเองได้", "ทำเองได้", "ไม่ยุ่งยาก",
					"ติดตั้งสะดวก",
				}},
				{Name: "DIY_FRIENDLY", Phrases: []string{"diy", "ผู้หญิงก็ปูได้", "งานบ้าน", "ทำเองที่บ้าน"}},
				{Name: "WATERPROOF", Phrases: []string{"กันน้ำ", "ไม่กลัวน้ำ", "ทนน้ำ"}},
				{Name: "TERMITE_PROOF", Phrases: []string{"กันปลวก", "ไม่กลัวปลวก", "ไม่ผุ"}},
				{Name: "DURABLE", Phrases: []string{"ทนทาน", "ใช้งานได้นาน", "ไม่บวม", "แข็งแรง"}},
				{Name: "HEAT_REFLECTION", Phrases: []string{"สะท้อนความร้อน", "สะท้อนแดด", "แผ่นสะท้อนความร้อน"}},
				{Name: "ENERGY_SAVING", Phrases: []string{"ประหยัดพลังงาน", "ช่วยประหยัดไฟ", "ลดการใช้แอร์"}},
				{Name: "FIRE_RETARDANT", Phrases: []string{"หน่วงไฟ", "ไม่ลามไฟ", "ป้องกันการลามไฟ"}},
				{Name: "REALISTIC_LOOK", Phrases: []string{"สวยสมจริง", "ลายไม้สมจริง", "สวยเหมือนของจริง"}},
				{Name: "LIGHT_WEIGHT", Phrases: []string{"น้ำหนักเบา", "เบา", "ไม่หนัก"}},
			},
		},
		{
			Name: "promoMechanics",
			Tags: []Tag{
				{Name: "DIRECT_DISCOUNT", Phrases: []string{"รับส่วนลดทันที", "ลดทันที", "ลดเพิ่ม", "ส่วนลด 200 บาท"}},
				{Name: "PERCENT_DISCOUNT", Phrases: []string{"%", "ลดสูงสุด", "ลดมากสุด"}},
				{Name: "CAMPAIGN_11_11", Phrases: []string{"11.11", "11.11 big sale"}},
				{Name: "CAMPAIGN_12_12", Phrases: []string{"12.12"}},
				{Name: "FREE_GIFT", Phrases: []string{"ของแถม", "รับฟรี", "ของสมนาคุณ"}},
				{Name: "LIMITED_STOCK", Phrases: []string{"จำนวนจำกัด", "หมดแล้วหมดเลย", "ด่วน"}},
				{Name: "CHANNEL_EXCLUSIVE", Phrases: []string{"เฉพาะ shopee", "เฉพาะ lazada", "เฉพาะออนไลน์"}},
			},
		},
		// The source data declared channel labels without trigger phrases;
		// these dictionaries fill that gap from the channel names used in
		// the goal/CTA phrase lists.
		{
			Name: "channels",
			Tags: []Tag{
				{Name: "DEALER_OFFLINE", Phrases: []string{"ร้านตัวแทนจำหน่าย", "ตัวแทนจำหน่าย", "ร้านใกล้บ้าน", "dealer"}},
				{Name: "SHOPEE", Phrases: []string{"shopee", "ช้อปปี้"}},
				{Name: "LAZADA", Phrases: []string{"lazada", "ลาซาด้า"}},
				{Name: "OFFICIAL_WEBSITE", Phrases: []string{"official store", "เว็บไซต์ทางการ", "official website"}},
				{Name: "LINE", Phrases: []string{"line id", "แอดไลน์", "ไลน์"}},
				{Name: "CALL_CENTER", Phrases: []string{"call center", "คอลเซ็นเตอร์", "tel:"}},
			},
		},
		{
			Name: "ctas",
			Tags: []Tag{
				{Name: "CLICK_LINK", Phrases: []string{"คลิกเลย", "กดลิงก์", "กดที่ลิงก์", "shop now", "สั่งซื้อได้ที่"}},
				{Name: "CALL_PHONE", Phrases: []string{"tel:", "โทร"}},
				{Name: "ADD_LINE", Phrases: []string{"line id", "แอดไลน์"}},
				{Name: "VISIT_DEALER", Phrases: []string{"ร้านตัวแทนจำหน่าย", "ที่ร้านใกล้บ้าน"}},
				{Name: "SHOP_NOW", Phrases: []string{"shop now", "ช้อปเลย", "ช้อปตอนนี้"}},
			},
		},
		materialCategories(),
		designStyles(),
		generalHouseZones(),
	}
}
